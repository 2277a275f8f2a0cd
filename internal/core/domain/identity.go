package domain

import (
	"path/filepath"
	"strings"
)

// TestIdentity identifies a single test invocation by its class and method.
type TestIdentity struct {
	// Class is the fully qualified test class name, e.g. "com.example.BasicIT".
	Class string `json:"class"`
	// Method is the test method name.
	Method string `json:"method"`
}

// NewTestIdentity creates a TestIdentity.
func NewTestIdentity(class, method string) TestIdentity {
	return TestIdentity{Class: class, Method: method}
}

// Validate reports configuration errors for identities that cannot key a workspace.
func (id TestIdentity) Validate() error {
	if strings.TrimSpace(id.Class) == "" {
		return ErrNotAClassContext
	}
	if strings.TrimSpace(id.Method) == "" {
		return ErrNoTestMethod
	}
	return nil
}

// Key returns the test context key used to publish and look up results.
func (id TestIdentity) Key() string {
	return id.Class + "#" + id.Method
}

// String implements fmt.Stringer.
func (id TestIdentity) String() string {
	return id.Key()
}

// ClassPath returns the class name as a relative directory path.
// Package separators and nested class separators become path separators.
func (id TestIdentity) ClassPath() string {
	parts := strings.FieldsFunc(id.Class, func(r rune) bool {
		return r == '.' || r == '$'
	})
	for i, p := range parts {
		parts[i] = SanitizeName(p)
	}
	return filepath.Join(parts...)
}

// MethodDir returns the method name sanitized for use as a directory name.
// A name ending in the shared project suffix has the suffix separator escaped,
// so fresh copy directories never shadow shared project directories.
func (id TestIdentity) MethodDir() string {
	dir := SanitizeName(id.Method)
	if strings.HasSuffix(dir, SharedSuffix) {
		return dir[:len(dir)-len(SharedSuffix)] + escapeByte(SharedSuffix[0]) + SharedSuffix[1:]
	}
	return dir
}

// SanitizeName maps name to a directory name. Characters in [A-Za-z0-9_-] are
// kept, every other byte is written as '~' followed by two upper case hex
// digits. The mapping is injective, distinct names never share a directory.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isSafeNameByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteString(escapeByte(c))
	}
	return b.String()
}

func isSafeNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

func escapeByte(c byte) string {
	const hex = "0123456789ABCDEF"
	return string([]byte{nameEscape, hex[c>>4], hex[c&0x0f]})
}

const nameEscape = '~'
