package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/jand6793/chat-website-backend/internal/dbx"
	"github.com/jand6793/chat-website-backend/internal/server/criteria"
	"github.com/jand6793/chat-website-backend/internal/server/models"
	messagesrepo "github.com/jand6793/chat-website-backend/internal/server/repositories/messages"
	"github.com/jand6793/chat-website-backend/internal/server/repositories/repomanager"
	usersrepo "github.com/jand6793/chat-website-backend/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

type fakeUsersRepo struct {
	getOut      dbx.ExecResult
	getCrit     criteria.User
	getIsLogin  bool
	byIDsOut    dbx.ExecResult
	byIDsIn     []int64
	createOut   dbx.ExecResult
	createIn    models.UserCreate
	updateOut   dbx.ExecResult
	updateID    int64
	deleteOut   dbx.ExecResult
	deleteID    int64
	deleteValue bool
}

func (f *fakeUsersRepo) Get(ctx context.Context, crit criteria.User, isLogin bool) dbx.ExecResult {
	f.getCrit = crit
	f.getIsLogin = isLogin
	return f.getOut
}

func (f *fakeUsersRepo) GetByIDs(ctx context.Context, ids []int64) dbx.ExecResult {
	f.byIDsIn = ids
	return f.byIDsOut
}

func (f *fakeUsersRepo) Create(ctx context.Context, user models.UserCreate) dbx.ExecResult {
	f.createIn = user
	return f.createOut
}

func (f *fakeUsersRepo) Update(ctx context.Context, id int64, update models.UserUpdate, returnResults bool) dbx.ExecResult {
	f.updateID = id
	return f.updateOut
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id int64, deleted bool, returnResults bool) dbx.ExecResult {
	f.deleteID = id
	f.deleteValue = deleted
	return f.deleteOut
}

type fakeMessagesRepo struct {
	getOut      dbx.ExecResult
	getCallerID int64
	byIDOut     dbx.ExecResult
	byIDIn      int64
	createOut   dbx.ExecResult
	createIn    models.MessageToDB
	updateOut   dbx.ExecResult
	updateID    int64
	deleteOut   dbx.ExecResult
	deleteID    int64
	deleteFlag  bool
}

func (f *fakeMessagesRepo) Get(ctx context.Context, callerID int64, crit criteria.Message) dbx.ExecResult {
	f.getCallerID = callerID
	return f.getOut
}

func (f *fakeMessagesRepo) GetByID(ctx context.Context, id int64) dbx.ExecResult {
	f.byIDIn = id
	return f.byIDOut
}

func (f *fakeMessagesRepo) Create(ctx context.Context, message models.MessageToDB) dbx.ExecResult {
	f.createIn = message
	return f.createOut
}

func (f *fakeMessagesRepo) Update(ctx context.Context, id int64, update models.MessageUpdate, returnResults bool) dbx.ExecResult {
	f.updateID = id
	return f.updateOut
}

func (f *fakeMessagesRepo) Delete(ctx context.Context, id int64, deleted bool, returnResults bool) dbx.ExecResult {
	f.deleteID = id
	f.deleteFlag = deleted
	return f.deleteOut
}

type fakeRepoManager struct {
	users    *fakeUsersRepo
	messages *fakeMessagesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db *sql.DB) usersrepo.Repository { return m.users }

func (m *fakeRepoManager) Messages(db *sql.DB) messagesrepo.Repository { return m.messages }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)
