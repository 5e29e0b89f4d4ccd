package utils

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPStatusByCode(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeUnauthenticated, http.StatusUnauthorized},
		{CodeInvalidCredential, http.StatusUnauthorized},
		{CodeNotFound, http.StatusNotFound},
		{CodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{CodeStorageUnavailable, http.StatusInternalServerError},
		{CodePersistenceUnavailable, http.StatusInternalServerError},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		err := E(tc.code, "op", "msg", nil)
		if got := HTTPStatus(err); got != tc.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestHTTPStatusFallback(t *testing.T) {
	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("plain error status = %d, want 500", got)
	}
	if got := HTTPStatus(ErrNotFound); got != http.StatusNotFound {
		t.Fatalf("ErrNotFound status = %d, want 404", got)
	}
}

func TestIsCodeSeesWrappedAppError(t *testing.T) {
	base := E(CodeNotFound, "Repo.Find", "Document not found", ErrNotFound)
	if !IsCode(base, CodeNotFound) {
		t.Fatal("IsCode should match the AppError code")
	}
	if IsCode(base, CodeInvalidInput) {
		t.Fatal("IsCode matched the wrong code")
	}
	if !errors.Is(base, ErrNotFound) {
		t.Fatal("wrapped sentinel should survive errors.Is")
	}
}

func TestAppErrorMessageComposition(t *testing.T) {
	err := E(CodeInternal, "DocumentService.Upload", "Internal server error", errors.New("dial tcp: refused"))
	want := "DocumentService.Upload: Internal server error: dial tcp: refused"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	bare := E(CodeInvalidInput, "", "userId and title are required", nil)
	if bare.Error() != "userId and title are required" {
		t.Fatalf("Error() = %q", bare.Error())
	}
}
