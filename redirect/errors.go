package redirect

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBase64           = errors.New("invalid base64 input")
	ErrInvalidKeySize          = errors.New("invalid key size")
	ErrInvalidCiphertextLength = errors.New("ciphertext is not a multiple of the block size")
	ErrDecryptFailed           = errors.New("decryption failed")
	ErrInvalidUTF8             = errors.New("plaintext is not valid UTF-8")
	ErrInvalidJSON             = errors.New("plaintext is not valid JSON")
)

var errNotObject = errors.New("payload is not a JSON object")

// Error ties a decryption failure to the input that caused it ("token" or
// "data"). Kind is one of the sentinel errors above.
type Error struct {
	Input string
	Kind  error
	Err   error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Input != "" {
		msg = e.Input + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("redirect: %s: %v", msg, e.Err)
	}
	return "redirect: " + msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
