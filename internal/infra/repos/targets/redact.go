package targets

import (
	"net/url"
	"strings"

	"github.com/mmrzaf/dataz/internal/domain"
)

const mask = "****"

// secretKeys are DSN parameters holding credentials, including the
// go-sqlite3 user authentication parameters.
var secretKeys = []string{"password", "pass", "pwd", "_auth_pass"}

func isSecretKey(k string) bool {
	k = strings.ToLower(k)
	for _, s := range secretKeys {
		if k == s {
			return true
		}
	}
	return false
}

// RedactDSN masks passwords in URL and keyword DSNs. Anything it cannot
// parse is masked entirely.
func RedactDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return ""
	}

	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.Host != "" {
		var userinfo string
		if u.User != nil {
			userinfo = url.User(u.User.Username()).String()
			if _, ok := u.User.Password(); ok {
				userinfo += ":" + mask
			}
			userinfo += "@"
		}
		u.User = nil
		u.RawQuery = redactQuery(u.RawQuery)
		s := u.String()
		prefix := u.Scheme + "://"
		return prefix + userinfo + strings.TrimPrefix(s, prefix)
	}

	parts := strings.Fields(dsn)
	redacted := false
	for i, p := range parts {
		k, _, ok := strings.Cut(p, "=")
		if ok && isSecretKey(k) {
			parts[i] = k + "=" + mask
			redacted = true
		}
	}
	if redacted {
		return strings.Join(parts, " ")
	}

	return mask
}

// redactQuery masks secret parameters in place, keeping the order and
// encoding of the others.
func redactQuery(raw string) string {
	if raw == "" {
		return ""
	}
	params := strings.Split(raw, "&")
	for i, p := range params {
		k, _, _ := strings.Cut(p, "=")
		if key, err := url.QueryUnescape(k); err == nil && isSecretKey(key) {
			params[i] = k + "=" + mask
		}
	}
	return strings.Join(params, "&")
}

// redactPath masks secret query parameters of a sqlite DSN, which is a file
// path or a file: URI and is otherwise shown as is.
func redactPath(dsn string) string {
	path, query, ok := strings.Cut(dsn, "?")
	if !ok {
		return dsn
	}
	return path + "?" + redactQuery(query)
}

// RedactTarget returns a copy of t that is safe to print.
func RedactTarget(t *domain.TargetConfig) *domain.TargetConfig {
	if t == nil {
		return nil
	}
	cp := *t
	if cp.Kind == domain.TargetKindSQLite {
		cp.DSN = redactPath(cp.DSN)
	} else {
		cp.DSN = RedactDSN(cp.DSN)
	}
	if len(t.Options) > 0 {
		cp.Options = make(map[string]string, len(t.Options))
		for k, v := range t.Options {
			if isSecretKey(k) {
				v = mask
			}
			cp.Options[k] = v
		}
	}
	return &cp
}

func RedactTargets(list []*domain.TargetConfig) []*domain.TargetConfig {
	out := make([]*domain.TargetConfig, 0, len(list))
	for _, t := range list {
		out = append(out, RedactTarget(t))
	}
	return out
}
