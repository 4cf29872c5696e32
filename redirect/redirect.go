// Package redirect decodes the status payload that the hosted checkout
// appends to the customer redirect URL.
//
// The payload is AES-128-ECB encrypted with PKCS#7 padding; the key is the
// merchant token of the checkout session. Both values arrive base64 encoded,
// usually with the URL-safe alphabet and without padding.
package redirect

import (
	"bytes"
	"crypto/aes"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const KeySize = 16

// Decrypt returns the decrypted payload as a generic JSON object.
func Decrypt(encryptedData, token string) (map[string]any, error) {
	out, err := DecryptInto[map[string]any](encryptedData, token)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// DecryptInto decrypts the payload and decodes it into a T. The payload must
// be a JSON object.
func DecryptInto[T any](encryptedData, token string) (*T, error) {
	plaintext, err := Plaintext(encryptedData, token)
	if err != nil {
		return nil, err
	}

	if !json.Valid(plaintext) {
		return nil, &Error{Kind: ErrInvalidJSON}
	}
	if trimmed := bytes.TrimLeft(plaintext, " \t\r\n"); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &Error{Kind: ErrInvalidJSON, Err: errNotObject}
	}

	var out T
	if err := json.Unmarshal(plaintext, &out); err != nil {
		return nil, &Error{Kind: ErrInvalidJSON, Err: err}
	}
	return &out, nil
}

// Plaintext decrypts the payload and returns the raw UTF-8 document.
func Plaintext(encryptedData, token string) ([]byte, error) {
	key, err := decodeBase64(token)
	if err != nil {
		return nil, &Error{Input: "token", Kind: ErrInvalidBase64, Err: err}
	}
	if len(key) != KeySize {
		return nil, &Error{
			Input: "token",
			Kind:  ErrInvalidKeySize,
			Err:   fmt.Errorf("got %d bytes, want %d", len(key), KeySize),
		}
	}

	ciphertext, err := decodeBase64(encryptedData)
	if err != nil {
		return nil, &Error{Input: "data", Kind: ErrInvalidBase64, Err: err}
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, &Error{
			Input: "data",
			Kind:  ErrInvalidCiphertextLength,
			Err:   fmt.Errorf("got %d bytes", len(ciphertext)),
		}
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, &Error{Input: "token", Kind: ErrInvalidKeySize, Err: err}
	}

	// ECB: every block is decrypted on its own.
	padded := make([]byte, len(ciphertext))
	for start := 0; start < len(ciphertext); start += aes.BlockSize {
		block.Decrypt(padded[start:start+aes.BlockSize], ciphertext[start:start+aes.BlockSize])
	}

	plaintext, err := unpad(padded)
	if err != nil {
		return nil, &Error{Input: "data", Kind: ErrDecryptFailed, Err: err}
	}

	if !utf8.Valid(plaintext) {
		return nil, &Error{Kind: ErrInvalidUTF8}
	}
	return plaintext, nil
}

// decodeBase64 accepts both alphabets, with or without trailing padding.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimRight(strings.TrimSpace(s), "=")
	s = strings.NewReplacer("-", "+", "_", "/").Replace(s)
	return base64.RawStdEncoding.DecodeString(s)
}

func unpad(b []byte) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize {
		return nil, fmt.Errorf("bad padding length %d", n)
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("bad padding byte")
		}
	}
	return b[:len(b)-n], nil
}
