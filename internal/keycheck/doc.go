// Package keycheck validates keys against charset, length and affix
// constraints and explains the outcome in a Report.
//
// Checks never stop at the first failure: every applicable check runs and every
// failure is listed in Report.Reasons, in a fixed order. Report.Hints carries
// advisory notes about likely caller mistakes and never changes Report.Valid.
//
// Only malformed constraints, such as an unknown preset name or a negative
// length bound, are returned as errors. A key failing its constraints is not
// an error.
//
// Affixes are stripped by length before the charset and length checks, whether
// or not they match. Whether they match is checked afterwards on the raw key.
//
//	v := keycheck.New(alphabet.DefaultTable())
//	report, err := v.Validate("PRE_middle_SUF", keycheck.Constraints{
//		Prefix: "PRE_",
//		Suffix: "_SUF",
//	})
//	// report.Valid == true, report.Length == 6
package keycheck
