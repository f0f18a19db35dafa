package scoring

import "github.com/shopspring/decimal"

// Point sharing between a primary contributor (PI, Principal, Main Guide,
// First Author) and co-contributors. Two schemes exist in the rulebook:
//
//   - percentage: primary takes 60% of the base, co-contributors split the
//     remaining 40% evenly (sponsored projects, patents, PhD guidance);
//   - flat: the first author takes a fixed amount, co-authors split whatever
//     is left of the base (journal and conference papers).
//
// Either way Primary + n*PerCo equals the undivided base value.

var (
	primaryFraction = decimal.RequireFromString("0.6")
	coFraction      = decimal.RequireFromString("0.4")
)

// RoleSplit is the division of a record's base points between one primary
// contributor and coCount co-contributors.
type RoleSplit struct {
	Primary decimal.Decimal
	PerCo   decimal.Decimal
}

// SplitSixtyForty gives the primary 60% and divides 40% among coCount
// co-contributors. With coCount <= 0 the primary keeps everything.
func SplitSixtyForty(base decimal.Decimal, coCount int) RoleSplit {
	if coCount <= 0 {
		return RoleSplit{Primary: base}
	}
	return RoleSplit{
		Primary: base.Mul(primaryFraction),
		PerCo:   base.Mul(coFraction).Div(decimal.NewFromInt(int64(coCount))),
	}
}

// SplitFlat gives the primary a fixed share and divides the remainder of
// the base among coCount co-contributors.
func SplitFlat(base, flat decimal.Decimal, coCount int) RoleSplit {
	if coCount <= 0 {
		return RoleSplit{Primary: base}
	}
	return RoleSplit{
		Primary: flat,
		PerCo:   base.Sub(flat).Div(decimal.NewFromInt(int64(coCount))),
	}
}

// Primary-tag detection. An unrecognized role tag classifies the holder as
// a plain co-contributor, so a record with only unknown tags is scored at
// its full undivided value for the submitter.

func hasPrincipalInvestigator(invs []Investigator) bool {
	for _, inv := range invs {
		if inv.Role == RolePI {
			return true
		}
	}
	return false
}

func hasPrincipalInventor(invs []Inventor) bool {
	for _, inv := range invs {
		if inv.Role == RolePrincipalInventor {
			return true
		}
	}
	return false
}

func hasMainGuide(sups []Supervisor) bool {
	for _, s := range sups {
		if s.Role == RoleMainGuide {
			return true
		}
	}
	return false
}

func hasFirstAuthor(authors []Author) bool {
	for _, a := range authors {
		if a.Role == RoleFirstAuthor {
			return true
		}
	}
	return false
}
