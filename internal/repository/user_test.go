package repository

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil UserRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrUserNotFound.Error() != "user not found" {
		t.Fatalf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrDuplicateEmail.Error() != "email already registered" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateEmail.Error())
	}
}

func TestIsDuplicateEntry(t *testing.T) {
	if isDuplicateEntry(nil) {
		t.Fatal("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntry(errors.New("Duplicate entry 'x' for key 'uq_users_email'")) {
		t.Fatal("untyped error should not be a duplicate entry error")
	}
	if !isDuplicateEntry(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}) {
		t.Fatal("MySQL error 1062 should be a duplicate entry error")
	}
	if isDuplicateEntry(&mysql.MySQLError{Number: 1045, Message: "Access denied"}) {
		t.Fatal("MySQL error 1045 should not be a duplicate entry error")
	}
}
