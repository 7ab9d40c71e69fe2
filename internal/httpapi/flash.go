package httpapi

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	flashCookieName = "fyyur_flash"
	nonceSize       = 24
)

var errFlashTampered = errors.New("flash cookie could not be opened")

// flashStore keeps one-time messages in a sealed cookie until the next
// rendered page pops them.
type flashStore struct {
	key [32]byte
}

func newFlashStore(secret string) *flashStore {
	return &flashStore{key: sha256.Sum256([]byte(secret))}
}

// Add appends a message to the flashes already queued on the request and
// writes the updated cookie.
func (f *flashStore) Add(w http.ResponseWriter, r *http.Request, message string) error {
	messages, _ := f.read(r)
	messages = append(messages, message)

	value, err := f.seal(messages)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns queued messages and expires the cookie. Unreadable cookies are
// dropped.
func (f *flashStore) Pop(w http.ResponseWriter, r *http.Request) []string {
	messages, err := f.read(r)
	if errors.Is(err, http.ErrNoCookie) {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	if err != nil {
		return nil
	}
	return messages
}

func (f *flashStore) read(r *http.Request) ([]string, error) {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil, err
	}
	return f.open(cookie.Value)
}

func (f *flashStore) seal(messages []string) (string, error) {
	payload, err := json.Marshal(messages)
	if err != nil {
		return "", fmt.Errorf("encode flash: %w", err)
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("flash nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], payload, &nonce, &f.key)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (f *flashStore) open(value string) ([]string, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil || len(sealed) < nonceSize+secretbox.Overhead {
		return nil, errFlashTampered
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	payload, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &f.key)
	if !ok {
		return nil, errFlashTampered
	}

	var messages []string
	if err := json.Unmarshal(payload, &messages); err != nil {
		return nil, errFlashTampered
	}
	return messages, nil
}
