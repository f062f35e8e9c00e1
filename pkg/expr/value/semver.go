package value

import (
	"github.com/Masterminds/semver/v3"

	"github.com/qpanda/semfilter/pkg/expr/token"
)

// SemanticVersion is a SemVer 2.0.0 version.
type SemanticVersion struct{ V *semver.Version }

func (v SemanticVersion) Kind() token.Kind { return token.KindSemanticVersion }
func (v SemanticVersion) String() string   { return v.V.String() }

func (v SemanticVersion) Less(other Value) bool {
	o, ok := other.(SemanticVersion)
	return ok && v.V.LessThan(o.V)
}

func (v SemanticVersion) Equal(other Value) bool {
	o, ok := other.(SemanticVersion)
	return ok && v.V.Equal(o.V)
}

// Matches reports whether v satisfies requirement, which must be a
// SemanticVersionRequirement value.
func (v SemanticVersion) Matches(requirement Value) (bool, bool) {
	r, ok := requirement.(SemanticVersionRequirement)
	if !ok {
		return false, false
	}
	return r.C.Check(v.V), true
}

// SemanticVersionRequirement is a parser-only value kind: a version
// constraint expression, usable only as the right-hand literal of `matches`.
type SemanticVersionRequirement struct{ C *semver.Constraints }

func (v SemanticVersionRequirement) Kind() token.Kind {
	return token.KindSemanticVersionRequirement
}
func (v SemanticVersionRequirement) String() string { return v.C.String() }
