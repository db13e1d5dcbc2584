package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFieldErrors_MatchesValidation(t *testing.T) {
	fe := FieldErrors{}
	if fe.Err() != nil {
		t.Fatalf("empty FieldErrors must return nil error")
	}

	fe.Add("size", "bad")
	fe.Add("size", "ignored")
	fe.Add("name", MsgRequired)

	err := fmt.Errorf("create breed: %w", fe.Err())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected errors.Is(err, ErrValidation)")
	}

	got, ok := Fields(err)
	if !ok {
		t.Fatalf("expected Fields to unwrap FieldErrors")
	}
	if got["size"] != "bad" {
		t.Fatalf("first message per field must win, got %q", got["size"])
	}

	want := "validation failed: name: this field is required; size: bad"
	if fe.Error() != want {
		t.Fatalf("unexpected message: %q", fe.Error())
	}
}

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{Field("breed", "missing"), http.StatusBadRequest},
		{fmt.Errorf("get dog: %w", ErrNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := Status(c.err); got != c.want {
			t.Fatalf("Status(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
