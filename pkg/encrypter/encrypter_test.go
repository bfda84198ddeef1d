package encrypter_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/encrypter"
)

func testKey() string {
	return base64.URLEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "Valid 32-byte key", key: testKey()},
		{name: "Empty key", key: "", wantErr: true},
		{name: "Not base64", key: "not base64!!!", wantErr: true},
		{name: "Wrong length", key: base64.URLEncoding.EncodeToString([]byte("short")), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := encrypter.New(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncryptDecrypt(t *testing.T) {
	enc, err := encrypter.New(testKey())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	plaintext := `{"access_token":"ya29.secret","refresh_token":"1//abc"}`
	ciphertext, err := enc.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if strings.Contains(ciphertext, "secret") {
		t.Fatal("ciphertext leaks plaintext")
	}

	got, err := enc.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != plaintext {
		t.Errorf("roundtrip = %q, want %q", got, plaintext)
	}

	// Each encryption uses a fresh nonce.
	second, _ := enc.Encrypt(plaintext)
	if second == ciphertext {
		t.Error("expected distinct ciphertexts for the same plaintext")
	}
}

func TestDecryptErrors(t *testing.T) {
	enc, _ := encrypter.New(testKey())

	for _, input := range []string{"", "not base64!!!", base64.URLEncoding.EncodeToString([]byte("tiny"))} {
		if _, err := enc.Decrypt(input); err == nil {
			t.Errorf("Decrypt(%q): expected error", input)
		}
	}

	// Tampered ciphertext must not open.
	ct, _ := enc.Encrypt("payload")
	raw, _ := base64.URLEncoding.DecodeString(ct)
	raw[len(raw)-1] ^= 0xff
	if _, err := enc.Decrypt(base64.URLEncoding.EncodeToString(raw)); err == nil {
		t.Error("expected error for tampered ciphertext")
	}
}
