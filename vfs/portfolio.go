package vfs

// Portfolio builds the filesystem that visitors explore. Mirrors the
// directory layout printed by the tree command.
func Portfolio() Dir {
	return Dir{Entries: map[string]Node{
		"home": Dir{Entries: map[string]Node{
			"yash": Dir{Entries: map[string]Node{
				"README.md": File{Content: "Welcome to Yash's Portfolio Terminal!\n\n" +
					"This is a fully interactive Linux-like terminal experience.\n" +
					"Type 'help' to see available commands.\n\n" +
					"Explore the filesystem with 'ls' and 'cd' commands.\n" +
					"Use 'cat' to read files and 'neofetch' for system info.\n\n" +
					"Enjoy your stay!"},
				"bio.txt": File{Content: "Name: Yash\n" +
					"Role: Full Stack Developer\n" +
					"Location: Ahmedabad, Gujarat, IN\n" +
					"Passion: Building amazing digital experiences\n\n" +
					"I love creating interactive applications that push the boundaries\n" +
					"of what's possible on the web. This terminal portfolio is just one\n" +
					"example of how I like to blend creativity with technical skills."},
				"contact.txt": File{Content: "Email: yash@example.com\n" +
					"Phone: +91-XXXXXXXXXX\n" +
					"LinkedIn: linkedin.com/in/yash\n" +
					"GitHub: github.com/yash\n" +
					"Portfolio: yash.dev\n" +
					"Twitter: @yash_dev"},
				"skills": Dir{Entries: map[string]Node{
					"languages.txt": File{Content: "Programming Languages:\n" +
						"----------------------\n" +
						"* JavaScript/TypeScript  95%\n" +
						"* Python                 80%\n" +
						"* Java                   70%\n" +
						"* C++                    60%\n" +
						"* Go                     40%\n" +
						"* Rust                   30%"},
					"frameworks.txt": File{Content: "Frameworks & Libraries:\n" +
						"-----------------------\n" +
						"* React/Next.js          95%\n" +
						"* Node.js/Express        85%\n" +
						"* Django/FastAPI         75%\n" +
						"* Vue.js                 65%\n" +
						"* Angular                45%\n" +
						"* React Native           45%"},
					"tools.txt": File{Content: "Tools & Technologies:\n" +
						"---------------------\n" +
						"* Git/GitHub             95%\n" +
						"* Docker/Kubernetes      80%\n" +
						"* AWS/GCP                75%\n" +
						"* MongoDB/PostgreSQL     85%\n" +
						"* Redis                  70%\n" +
						"* Nginx                  65%"},
				}},
				"projects": Dir{Entries: map[string]Node{
					"e-commerce.md": File{Content: "# E-Commerce Platform\n\n" +
						"Tech Stack: Next.js, TypeScript, PostgreSQL, Stripe\n" +
						"Status: Production\n" +
						"GitHub: github.com/yash/ecommerce\n\n" +
						"A full-stack e-commerce platform with:\n" +
						"- Server-side rendering for SEO\n" +
						"- Real-time inventory management\n" +
						"- Secure payment processing\n" +
						"- Admin dashboard\n" +
						"- Mobile-responsive design"},
					"ai-chatbot.md": File{Content: "# AI Chatbot Assistant\n\n" +
						"Tech Stack: Python, OpenAI API, FastAPI, React\n" +
						"Status: Production\n" +
						"GitHub: github.com/yash/ai-chatbot\n\n" +
						"An intelligent chatbot with natural language processing:\n" +
						"- Context-aware conversations\n" +
						"- Multi-language support\n" +
						"- Custom training on domain-specific data\n" +
						"- Real-time responses\n" +
						"- Analytics dashboard"},
					"portfolio.md": File{Content: "# Terminal Portfolio\n\n" +
						"Tech Stack: Go, SSE, SQLite\n" +
						"Status: You're looking at it!\n" +
						"GitHub: github.com/yash/terminal-portfolio\n\n" +
						"This interactive terminal portfolio you're currently using:\n" +
						"- Full Linux command simulation\n" +
						"- File system navigation\n" +
						"- Command history\n" +
						"- Easter eggs and hidden features\n" +
						"- Real-time snake leaderboard"},
				}},
				"certifications": Dir{Entries: map[string]Node{
					"aws.txt": File{Content: "AWS Certified Solutions Architect - Associate\n" +
						"---------------------------------------------\n" +
						"Issued: January 2024\n" +
						"Expires: January 2027\n" +
						"Credential ID: AWS-CSA-2024-001\n\n" +
						"Validation: aws.amazon.com/verification\n" +
						"Skills: EC2, S3, Lambda, RDS, VPC, CloudFormation"},
					"docker.txt": File{Content: "Docker Certified Associate\n" +
						"--------------------------\n" +
						"Issued: March 2024\n" +
						"Expires: March 2027\n" +
						"Credential ID: DCA-2024-002\n\n" +
						"Validation: docker.com/verification\n" +
						"Skills: Containerization, Orchestration, Swarm, Compose"},
					"react.txt": File{Content: "Meta React Developer Certificate\n" +
						"--------------------------------\n" +
						"Issued: February 2024\n" +
						"Provider: Meta via Coursera\n" +
						"Credential ID: META-REACT-2024-003\n\n" +
						"Validation: coursera.org/verification\n" +
						"Skills: React, JSX, Hooks, Context API, Testing"},
				}},
				".secrets": Dir{Entries: map[string]Node{
					"secret.txt": File{Content: "Congratulations! You found the secret file!\n\n" +
						"Here's a hidden fact: This terminal supports over 25 commands\n" +
						"and has a fully functional virtual file system.\n\n" +
						"Try typing 'sudo rm -rf /' for a surprise!\n\n" +
						"Or type 'matrix' for some visual effects.\n\n" +
						"Keep exploring! There are more easter eggs hidden around..."},
				}},
			}},
		}},
	}}
}

// HomePath is where every session starts.
func HomePath() []string {
	return []string{"home", "yash"}
}
