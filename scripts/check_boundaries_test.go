package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, root, rel, src string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestCollectViolationsFlagsLayerBreaches(t *testing.T) {
	root := filepath.Join(t.TempDir(), "contexts")
	writeSource(t, root, "publishing/post-service/domain/entities/post.go", `package entities

import _ "quill/internal/platform/db"
`)
	writeSource(t, root, "publishing/post-service/application/commands/create.go", `package commands

import _ "quill/contexts/identity-access/user-service/ports"
`)
	writeSource(t, root, "publishing/post-service/adapters/postgres/repository.go", `package postgresadapter

import (
	_ "gorm.io/gorm"
	_ "quill/internal/platform/db"
	_ "quill/contexts/publishing/post-service/ports"
)
`)

	violations := collectViolations(root)
	rules := map[string]bool{}
	for _, v := range violations {
		rules[v.Rule] = true
		if v.File == "contexts/publishing/post-service/adapters/postgres/repository.go" {
			t.Fatalf("adapters may import platform packages, got %+v", v)
		}
	}
	for _, rule := range []string{
		"domain must not import runtime infrastructure",
		"cross-module imports are forbidden",
		"application import is outside explicit allowlist",
	} {
		if !rules[rule] {
			t.Fatalf("expected rule %q in %+v", rule, violations)
		}
	}
}

func TestCollectViolationsAcceptsCleanModule(t *testing.T) {
	root := filepath.Join(t.TempDir(), "contexts")
	writeSource(t, root, "publishing/category-service/application/queries/get.go", `package queries

import (
	"context"

	_ "quill/contexts/publishing/category-service/domain/entities"
	_ "quill/contexts/publishing/category-service/ports"
)

var _ context.Context
`)

	if violations := collectViolations(root); len(violations) != 0 {
		t.Fatalf("expected no violations, got %+v", violations)
	}
}

func TestTransportMayOnlyUseSharedPackages(t *testing.T) {
	root := filepath.Join(t.TempDir(), "contexts")
	writeSource(t, root, "identity-access/auth-service/transport/http/http_dto.go", `package httptransport

import (
	_ "quill/internal/shared/validation"
	_ "quill/internal/platform/db"
)
`)

	violations := collectViolations(root)
	if len(violations) != 1 {
		t.Fatalf("expected one violation, got %+v", violations)
	}
	if violations[0].Import != "quill/internal/platform/db" || violations[0].Rule != "transport import is outside explicit allowlist" {
		t.Fatalf("unexpected violation %+v", violations[0])
	}
}
