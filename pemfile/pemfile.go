// Package pemfile generates and loads the SSH host key pair.
package pemfile

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"

	gossh "golang.org/x/crypto/ssh"

	"github.com/yashsuthar/termfolio"
)

// GenKeyPair writes a fresh RSA host key to privatePath and its
// authorized_keys form to publicPath.
func GenKeyPair(privatePath, publicPath string) error {
	privateKey, err := rsa.GenerateKey(rand.Reader, 4096)
	if err != nil {
		return termfolio.WithStack(err)
	}
	keyBytes := x509.MarshalPKCS1PrivateKey(privateKey)

	if err := os.WriteFile(privatePath, pem.EncodeToMemory(
		&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: keyBytes,
		}),
		0600,
	); err != nil {
		return termfolio.WithStack(err)
	}

	pub, err := gossh.NewPublicKey(&privateKey.PublicKey)
	if err != nil {
		return termfolio.WithStack(err)
	}
	if err := os.WriteFile(publicPath, gossh.MarshalAuthorizedKey(pub), 0600); err != nil {
		return termfolio.WithStack(err)
	}

	return nil
}

// EnsureKeyPair generates the key pair unless the private key already
// exists. It returns the private key PEM bytes either way.
func EnsureKeyPair(privatePath, publicPath string) ([]byte, error) {
	if _, err := os.Stat(privatePath); os.IsNotExist(err) {
		if err := GenKeyPair(privatePath, publicPath); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, termfolio.WithStack(err)
	}
	pemBytes, err := os.ReadFile(privatePath)
	if err != nil {
		return nil, termfolio.WithStack(err)
	}
	return pemBytes, nil
}
