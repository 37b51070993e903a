package grammar

import "github.com/ghettovoice/abnf"

var (
	ruleALPHA = abnf.Alt(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)
	ruleDIGIT = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})
)

// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
var schemeRule = abnf.Concat(
	"scheme",
	ruleALPHA,
	abnf.Repeat0Inf("*( ALPHA / DIGIT / \"+\" / \"-\" / \".\" )", abnf.AltFirst(
		"ALPHA / DIGIT / \"+\" / \"-\" / \".\"",
		ruleALPHA,
		ruleDIGIT,
		abnf.Literal("\"+\"", []byte{'+'}),
		abnf.Literal("\"-\"", []byte{'-'}),
		abnf.Literal("\".\"", []byte{'.'}),
	)),
)

var queryWordChar = abnf.AltFirst(
	"ALPHA / DIGIT / \"_\" / \"/\" / \"%\"",
	ruleALPHA,
	ruleDIGIT,
	abnf.Literal("\"_\"", []byte{'_'}),
	abnf.Literal("\"/\"", []byte{'/'}),
	abnf.Literal("\"%\"", []byte{'%'}),
)

// query-key = ( ALPHA / "_" ) *( ALPHA / DIGIT / "_" / "/" / "%" )
var queryKeyRule = abnf.Concat(
	"query-key",
	abnf.AltFirst("ALPHA / \"_\"", ruleALPHA, abnf.Literal("\"_\"", []byte{'_'})),
	abnf.Repeat0Inf("*query-word-char", queryWordChar),
)

// query-value = 1*( ALPHA / DIGIT / "_" / "/" / "%" )
var queryValueRule = abnf.Repeat1Inf("query-value", queryWordChar)

// query-pair = query-key [ "=" query-value ]
var queryPairRule = abnf.Concat(
	"query-pair",
	queryKeyRule,
	abnf.Optional("[ \"=\" query-value ]", abnf.Concat(
		"\"=\" query-value",
		abnf.Literal("\"=\"", []byte{'='}),
		queryValueRule,
	)),
)

// query-pairs = query-pair *( ( ";" / "&" ) query-pair )
var queryPairsRule = abnf.Concat(
	"query-pairs",
	queryPairRule,
	abnf.Repeat0Inf("*( ( \";\" / \"&\" ) query-pair )", abnf.Concat(
		"( \";\" / \"&\" ) query-pair",
		abnf.AltFirst(
			"\";\" / \"&\"",
			abnf.Literal("\";\"", []byte{';'}),
			abnf.Literal("\"&\"", []byte{'&'}),
		),
		queryPairRule,
	)),
)
