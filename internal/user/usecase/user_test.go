package usecase_test

import (
	"context"
	"errors"
	"testing"

	"shareit/internal/model"
	"shareit/internal/user"
	repo "shareit/internal/user/repository"
	"shareit/internal/user/usecase"
)

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc := usecase.New(newMemUserRepo(), &mockLogger{})
		out, err := uc.Create(ctx, user.CreateUserInput{Name: "user", Email: "email@email.ru"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID == 0 || out.User.Name != "user" || out.User.Email != "email@email.ru" {
			t.Errorf("unexpected user %+v", out.User)
		}
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		r := newMemUserRepo(model.User{ID: 1, Name: "user", Email: "email@email.ru"})
		uc := usecase.New(r, &mockLogger{})
		_, err := uc.Create(ctx, user.CreateUserInput{Name: "other", Email: "email@email.ru"})
		if !errors.Is(err, user.ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("Store Failure", func(t *testing.T) {
		r := newMemUserRepo()
		r.getErr = repo.ErrFailedToGet
		uc := usecase.New(r, &mockLogger{})
		_, err := uc.Create(ctx, user.CreateUserInput{Name: "user", Email: "email@email.ru"})
		if !errors.Is(err, repo.ErrFailedToGet) {
			t.Errorf("expected ErrFailedToGet, got %v", err)
		}
	})
}

func TestDetailAndList(t *testing.T) {
	ctx := context.Background()
	r := newMemUserRepo(
		model.User{ID: 1, Name: "a", Email: "a@mail.ru"},
		model.User{ID: 2, Name: "b", Email: "b@mail.ru"},
	)
	uc := usecase.New(r, &mockLogger{})

	out, err := uc.Detail(ctx, 2)
	if err != nil || out.User.Name != "b" {
		t.Fatalf("got %+v, %v", out, err)
	}

	if _, err := uc.Detail(ctx, 99); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	list, err := uc.List(ctx)
	if err != nil || len(list.Users) != 2 {
		t.Fatalf("got %+v, %v", list, err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	stored := model.User{ID: 1, Name: "user", Email: "email@email.ru"}

	t.Run("All Nil Leaves User Unchanged", func(t *testing.T) {
		uc := usecase.New(newMemUserRepo(stored), &mockLogger{})
		out, err := uc.Update(ctx, user.UpdateUserInput{ID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User != stored {
			t.Errorf("expected %+v, got %+v", stored, out.User)
		}
	})

	t.Run("Name Only", func(t *testing.T) {
		uc := usecase.New(newMemUserRepo(stored), &mockLogger{})
		out, err := uc.Update(ctx, user.UpdateUserInput{ID: 1, Name: ptr("updated")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Name != "updated" || out.User.Email != stored.Email {
			t.Errorf("unexpected user %+v", out.User)
		}
	})

	t.Run("Email Only", func(t *testing.T) {
		uc := usecase.New(newMemUserRepo(stored), &mockLogger{})
		out, err := uc.Update(ctx, user.UpdateUserInput{ID: 1, Email: ptr("new@mail.ru")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Name != stored.Name || out.User.Email != "new@mail.ru" {
			t.Errorf("unexpected user %+v", out.User)
		}
	})

	t.Run("Same Email Is Allowed", func(t *testing.T) {
		uc := usecase.New(newMemUserRepo(stored), &mockLogger{})
		if _, err := uc.Update(ctx, user.UpdateUserInput{ID: 1, Email: ptr(stored.Email)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Email Taken By Other User", func(t *testing.T) {
		r := newMemUserRepo(stored, model.User{ID: 2, Name: "other", Email: "other@mail.ru"})
		uc := usecase.New(r, &mockLogger{})
		_, err := uc.Update(ctx, user.UpdateUserInput{ID: 1, Email: ptr("other@mail.ru")})
		if !errors.Is(err, user.ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(newMemUserRepo(), &mockLogger{})
		_, err := uc.Update(ctx, user.UpdateUserInput{ID: 1, Name: ptr("x")})
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		r := newMemUserRepo(model.User{ID: 1, Name: "user", Email: "email@email.ru"})
		uc := usecase.New(r, &mockLogger{})
		if err := uc.Delete(ctx, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Detail(ctx, 1); !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("expected user to be gone, got %v", err)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(newMemUserRepo(), &mockLogger{})
		if err := uc.Delete(ctx, 1); !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("Still Present After Delete", func(t *testing.T) {
		r := newMemUserRepo(model.User{ID: 1, Name: "user", Email: "email@email.ru"})
		r.keepOnDel = true
		uc := usecase.New(r, &mockLogger{})
		if err := uc.Delete(ctx, 1); !errors.Is(err, repo.ErrFailedToDelete) {
			t.Errorf("expected ErrFailedToDelete, got %v", err)
		}
	})
}
