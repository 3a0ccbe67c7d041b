package services

import (
	"fmt"
	"strconv"

	"github.com/speps/go-hashids/v2"
)

const (
	codeAlphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
	codeMinLength = 6
)

// CodeEncoder derives a post's shareable code from its owner and id.
// attempt is zero unless an earlier code for the post was already taken.
type CodeEncoder func(ownerID, postID int64, attempt int) (string, error)

// EncodeCode salts a hashids encoder with the owner id so two owners never
// share codes for the same post id. Different salts can still land on the
// same code, so retries append the attempt number to the encoded values.
func EncodeCode(ownerID, postID int64, attempt int) (string, error) {
	h, err := newCodec(ownerID)
	if err != nil {
		return "", err
	}
	values := []int64{postID}
	if attempt > 0 {
		values = append(values, int64(attempt))
	}
	code, err := h.EncodeInt64(values)
	if err != nil {
		return "", fmt.Errorf("encode post id %d: %w", postID, err)
	}
	return code, nil
}

// DecodeCode returns the post id encoded in code for a known owner.
func DecodeCode(ownerID int64, code string) (int64, error) {
	h, err := newCodec(ownerID)
	if err != nil {
		return 0, err
	}
	ids, err := h.DecodeInt64WithError(code)
	if err != nil {
		return 0, fmt.Errorf("decode %q: %w", code, err)
	}
	if len(ids) != 1 && len(ids) != 2 {
		return 0, fmt.Errorf("decode %q: expected a post id, got %d values", code, len(ids))
	}
	return ids[0], nil
}

func newCodec(ownerID int64) (*hashids.HashID, error) {
	data := hashids.NewData()
	data.Salt = strconv.FormatInt(ownerID, 10)
	data.Alphabet = codeAlphabet
	data.MinLength = codeMinLength
	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("hashids: %w", err)
	}
	return h, nil
}
