package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minSecretLen = 32

var (
	ErrInvalidToken = errors.New("invalid token format")
	ErrBadSignature = errors.New("invalid signature")
	ErrExpired      = errors.New("token expired")
)

// CreateAdminToken は subject と有効期限から署名付きの管理者トークンを生成する
func CreateAdminToken(subject string, expiresAt time.Time, secret []byte) string {
	payload := subject + "|" + strconv.FormatInt(expiresAt.Unix(), 10)
	return base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + sign([]byte(payload), secret)
}

// VerifyAdminToken はトークンを検証し subject を返す
func VerifyAdminToken(token string, secret []byte, now time.Time) (string, error) {
	encoded, sig, ok := strings.Cut(token, ".")
	if !ok {
		return "", ErrInvalidToken
	}
	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !hmac.Equal([]byte(sign(payload, secret)), []byte(sig)) {
		return "", ErrBadSignature
	}

	// The subject may itself contain '|', the expiry never does.
	i := strings.LastIndexByte(string(payload), '|')
	if i < 0 {
		return "", ErrInvalidToken
	}
	subject := string(payload[:i])
	exp, err := strconv.ParseInt(string(payload[i+1:]), 10, 64)
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}
	if !now.Before(time.Unix(exp, 0)) {
		return "", ErrExpired
	}
	return subject, nil
}

func sign(payload, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// SecretBytes は文字列から署名用のバイト列を生成する（最低32バイト）
func SecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
