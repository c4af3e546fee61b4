package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhive/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := NewDB(dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := model.User{Email: email, PasswordHash: "x"}
	if err := NewUserRepository(db).Create(context.Background(), &user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func TestListByOwnerOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	user := createUser(t, db, "a@x.com")

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"first", "second", "third"} {
		task := model.Task{UserID: user.ID, Title: title, Status: model.StatusTodo,
			CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.Create(ctx, &task); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	tasks, err := repo.ListByOwner(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}
	for i, want := range []string{"third", "second", "first"} {
		if tasks[i].Title != want {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, want)
		}
	}
}

func TestListByOwnerEmpty(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "a@x.com")

	tasks, err := NewTaskRepository(db).ListByOwner(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("got %d tasks, want 0", len(tasks))
	}
}

func TestUpdateScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice@x.com")
	bob := createUser(t, db, "bob@x.com")

	task := model.Task{UserID: alice.ID, Title: "write spec", Status: model.StatusTodo}
	if err := repo.Create(ctx, &task); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.Update(ctx, bob.ID, task.ID, map[string]any{"status": model.StatusDone}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("another owner's update should look like not found, got %v", err)
	}

	updated, err := repo.Update(ctx, alice.ID, task.ID, map[string]any{"status": model.StatusDone})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Status != model.StatusDone {
		t.Errorf("status = %q, want %q", updated.Status, model.StatusDone)
	}
	if updated.Title != "write spec" {
		t.Errorf("title changed to %q", updated.Title)
	}
}

func TestDeleteScopedToOwnerAndNotIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice@x.com")
	bob := createUser(t, db, "bob@x.com")

	task := model.Task{UserID: alice.ID, Title: "write spec", Status: model.StatusTodo}
	if err := repo.Create(ctx, &task); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, bob.ID, task.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("another owner's delete should look like not found, got %v", err)
	}
	if err := repo.Delete(ctx, alice.ID, task.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := repo.Delete(ctx, alice.ID, task.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second delete should be not found, got %v", err)
	}
}

func TestUserEmailUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &model.User{Email: "a@x.com", PasswordHash: "x"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := repo.Create(ctx, &model.User{Email: "a@x.com", PasswordHash: "y"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate email should map to gorm.ErrDuplicatedKey, got %v", err)
	}
}

func TestCountByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	user := createUser(t, db, "a@x.com")

	for _, status := range []string{model.StatusTodo, model.StatusTodo, model.StatusDone} {
		task := model.Task{UserID: user.ID, Title: "t", Status: status}
		if err := repo.Create(ctx, &task); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	counts, err := repo.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[model.StatusTodo] != 2 || counts[model.StatusDone] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}
