package sqldb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

var testNewUser = domain.NewUser{
	Username:     "alice",
	Email:        "a@x.io",
	PasswordHash: "hash",
	PasswordSalt: "00112233445566778899aabbccddeeff",
	Role:         domain.RoleUser,
	CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
}

var userColumns = []string{"Id", "CompanyId", "Username", "PasswordHash", "PasswordSalt", "Email", "Role", "CreatedDate", "ModifiedDate"}

func TestAccountDirectory_InsertUser_Success(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO `tblUser`").WillReturnResult(sqlmock.NewResult(5, 1))

	u, err := NewAccountDirectory(db).InsertUser(context.Background(), testNewUser)
	require.NoError(t, err)
	assert.Equal(t, int64(5), u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, testNewUser.CreatedAt, u.ModifiedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountDirectory_InsertUser_DuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO `tblUser`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'uq_tblUser_Username'"})
	mock.ExpectQuery("SELECT \\* FROM `tblUser` WHERE").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, nil, "alice", "h", "s", "old@x.io", "user", time.Now(), time.Now()))

	_, err := NewAccountDirectory(db).InsertUser(context.Background(), testNewUser)
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountDirectory_InsertUser_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO `tblUser`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'a@x.io' for key 'uq_tblUser_Email'"})
	mock.ExpectQuery("SELECT \\* FROM `tblUser` WHERE").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := NewAccountDirectory(db).InsertUser(context.Background(), testNewUser)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.ErrorIs(t, err, domain.ErrDuplicateCredential)
}

func TestAccountDirectory_InsertUser_OtherError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO `tblUser`").WillReturnError(errors.New("connection reset"))

	_, err := NewAccountDirectory(db).InsertUser(context.Background(), testNewUser)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicateCredential)
}

func TestAccountDirectory_FindUserByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM `tblUser` WHERE `tblUser`.`Username` = \\?").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, 9, "alice", "hash", "salt", "a@x.io", "user", created, created))

	u, err := NewAccountDirectory(db).FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
	require.NotNil(t, u.CompanyID)
	assert.Equal(t, int64(9), *u.CompanyID)
	assert.Equal(t, "salt", u.PasswordSalt)
	assert.Equal(t, created, u.CreatedAt)
}

func TestAccountDirectory_FindUserByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `tblUser`").WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := NewAccountDirectory(db).FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAccountDirectory_InsertLoginEvent(t *testing.T) {
	db, mock := newMockDB(t)
	at := time.Date(2024, 5, 1, 9, 30, 15, 123456000, time.Local)
	mock.ExpectExec("INSERT INTO `tblUserLog`").
		WithArgs("alice", "2024-05-01", "09:30:15.123456").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := NewAccountDirectory(db).InsertLoginEvent(context.Background(), domain.NewLoginEvent("alice", at))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
