package classkit

import (
	"sort"
	"strings"

	"github.com/reoring/classkit/i18n"
)

// issueAt creates an Issue for the given class/attr with a localized message.
func issueAt(class, attr, code string, data map[string]string) Issue {
	params := make(map[string]any, len(data))
	for k, v := range data {
		params[k] = v
	}
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["attr"]; !ok && attr != "" {
		data["attr"] = attr
	}
	return Issue{
		Class:   class,
		Attr:    attr,
		Code:    code,
		Message: i18n.T(code, data),
		Params:  params,
	}
}

// protectedIssue reports a set/delete/rebind on a protected attribute, naming
// its owner.
func protectedIssue(class, attr string, owner *Class) Issue {
	return issueAt(class, attr, CodeProtected, map[string]string{
		"attr":  attr,
		"owner": reprOwner(owner),
	})
}

// conflictIssue reports incompatible protection claims on the same attribute.
func conflictIssue(class, attr string, owners ...*Class) Issue {
	return issueAt(class, attr, CodeProtectionConflict, map[string]string{
		"attr":  attr,
		"owner": reprOwner(owners...),
	})
}

func unknownAttrIssue(class, attr string) Issue {
	return issueAt(class, attr, CodeUnknownAttribute, nil)
}

func sortStrings(names []string) { sort.Strings(names) }

// sortedKeys returns the KV keys in sorted order for deterministic
// assignment and diagnostics.
func sortedKeys(params KV) []string {
	out := make([]string, 0, len(params))
	for k := range params {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func joinQuoted(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}

// reprOwner renders one or more protection owners for diagnostics. A nil
// owner denotes the root protection installed by the constructor itself.
func reprOwner(owners ...*Class) string {
	names := make([]string, 0, len(owners))
	for _, o := range owners {
		if o == nil {
			names = append(names, "<classkit root protection>")
			continue
		}
		names = append(names, "'"+o.name+"'")
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
