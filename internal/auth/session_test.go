package auth

import (
	"testing"
	"time"
)

func TestSessionLifecycle(t *testing.T) {
	rdb := testRedis(t)
	userId := uint(901)
	token := "sometoken"

	if err := SetSession(rdb, userId, token, time.Minute); err != nil {
		t.Fatalf("set session: %v", err)
	}
	got, err := GetSession(rdb, userId)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got != token {
		t.Errorf("expected token %q, got %q", token, got)
	}
	if err := DeleteSession(rdb, userId); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := GetSession(rdb, userId); err == nil {
		t.Errorf("expected error after session delete")
	}
}
