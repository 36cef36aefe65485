package vres_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/vres/pkg/vres"
)

// End-to-end record validation: independently checked fields combined with
// the accumulating apply, so a reject reports every broken field at once, in
// field-declaration order.

type account struct {
	Name  string
	Email string
}

func checkName(name string) vres.Result[[]string, string] {
	return vres.FromPredicate(name,
		func(s string) bool { return strings.TrimSpace(s) == "" },
		[]string{"name: must not be empty"})
}

func checkEmail(email string) vres.Result[[]string, string] {
	return vres.FromPredicate(email,
		func(s string) bool { return !strings.Contains(s, "@") },
		[]string{"email: missing @"})
}

func checkAccount(name, email string) vres.Result[[]string, account] {
	return vres.Map2(checkName(name), checkEmail(email),
		func(n, e string) account { return account{Name: n, Email: e} },
		vres.AppendSlices[string])
}

func TestAccountValidation_AllFieldsValid(t *testing.T) {
	r := checkAccount("ada", "ada@example.com")

	assert.True(t, r.IsSuccess())
	assert.Equal(t, account{Name: "ada", Email: "ada@example.com"}, r.Value())
}

func TestAccountValidation_CollectsEveryFieldError(t *testing.T) {
	r := checkAccount("", "no-at-sign")

	assert.True(t, r.IsFailure())
	assert.Equal(t, []string{"name: must not be empty", "email: missing @"}, r.Err())
}

func TestAccountValidation_SingleFieldError(t *testing.T) {
	r := checkAccount("ada", "no-at-sign")

	assert.True(t, r.IsFailure())
	assert.Equal(t, []string{"email: missing @"}, r.Err())

	r = checkAccount("", "ada@example.com")
	assert.Equal(t, []string{"name: must not be empty"}, r.Err())
}

func TestAccountValidation_ErrorOrderIndependentOfWhichFailed(t *testing.T) {
	// three independent checks, first and last broken: declaration order holds
	r := vres.Map3(
		vres.Fail[[]string, string]([]string{"first"}),
		vres.Success[[]string]("ok"),
		vres.Fail[[]string, string]([]string{"last"}),
		func(a, b, c string) string { return a + b + c },
		vres.AppendSlices[string])

	assert.Equal(t, []string{"first", "last"}, r.Err())
}

func TestAccountValidation_ManyRecords(t *testing.T) {
	type form struct {
		name, email string
	}
	forms := []form{
		{"ada", "ada@example.com"},
		{"", "broken"},
		{"bob", "bob@example.com"},
	}

	out := vres.TraverseAll(forms,
		func(f form) vres.Result[[]string, account] {
			return checkAccount(f.name, f.email)
		},
		vres.AppendSlices[string])

	assert.True(t, out.IsFailure())
	assert.Equal(t, []string{"name: must not be empty", "email: missing @"}, out.Err())

	good := vres.TraverseAll(forms[:1],
		func(f form) vres.Result[[]string, account] {
			return checkAccount(f.name, f.email)
		},
		vres.AppendSlices[string])
	assert.True(t, good.IsSuccess())
	assert.Len(t, good.Value(), 1)
}
