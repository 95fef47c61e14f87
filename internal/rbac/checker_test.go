package rbac

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	c := NewChecker(nil)

	require.True(t, c.Has(RoleTeacher, "exam:create"))
	require.True(t, c.Has(RoleTeacher, "exam:view"))
	require.True(t, c.Has(RoleTeacher, "result:view-all"))
	require.False(t, c.Has(RoleTeacher, "result:submit"))

	require.True(t, c.Has(RoleStudent, "exam:view"))
	require.True(t, c.Has(RoleStudent, "result:submit"))
	require.True(t, c.Has(RoleStudent, "result:view-own"))
	require.False(t, c.Has(RoleStudent, "exam:create"))
	require.False(t, c.Has(RoleStudent, "result:view-all"))

	require.False(t, c.Has("", "exam:view"))
	require.False(t, c.Has("admin", "exam:view"))
}

func TestAny(t *testing.T) {
	c := NewChecker(nil)
	require.True(t, c.Any(RoleStudent, "result:view-own", "result:view-all"))
	require.True(t, c.Any(RoleTeacher, "result:view-own", "result:view-all"))
	require.False(t, c.Any(RoleStudent, "exam:create", "result:view-all"))
}

func TestWildcardPatterns(t *testing.T) {
	c := NewChecker(map[string][]string{
		"admin":  {"*"},
		"grader": {"result:*"},
	})
	require.True(t, c.Has("admin", "exam:create"))
	require.True(t, c.Has("grader", "result:view-all"))
	require.False(t, c.Has("grader", "exam:view"))
}

func TestPrincipalContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, ok := PrincipalFromContext(ctx)
	require.False(t, ok)

	p := Principal{ID: "t-1", Role: RoleTeacher}
	got, ok := PrincipalFromContext(WithPrincipal(ctx, p))
	require.True(t, ok)
	require.Equal(t, p, got)
}
