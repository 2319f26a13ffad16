package core

// SecretCipher is the boundary to the external encryption collaborator.
// Connection passwords arrive encrypted from the persistence layer and are
// decrypted only at the execution boundary. The engine never generates or
// stores key material itself.
type SecretCipher interface {
	// Encrypt returns the ciphertext for a plaintext secret
	Encrypt(plaintext string) (string, error)
	// Decrypt returns the plaintext for a stored ciphertext
	Decrypt(ciphertext string) (string, error)
}
