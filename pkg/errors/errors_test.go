package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Error("nil 不应视为唯一约束冲突")
	}
	if !IsUniqueViolation(gorm.ErrDuplicatedKey) {
		t.Error("ErrDuplicatedKey 应视为唯一约束冲突")
	}
	if !IsUniqueViolation(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23505"})) {
		t.Error("包装后的 23505 应视为唯一约束冲突")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("外键冲突不应视为唯一约束冲突")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Error("普通错误不应视为唯一约束冲突")
	}
}
