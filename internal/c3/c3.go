// Package c3 implements the candidate-collection algorithm used to drive
// grammar-aware code completion for ANTLR-generated parsers: given a parser
// positioned over a token stream and a caret token index, it walks the ATN
// from a starting rule and reports which token kinds and which "preferred"
// rules could legally occur at the caret.
//
// This is a general purpose algorithm, independent of any particular
// grammar; the MySQL-specific configuration (which tokens to ignore, which
// rules are preferred) lives in the completion package.
package c3

import "github.com/antlr4-go/antlr/v4"

// CandidatesCollection is the result of one CollectCandidates call.
//
// Tokens maps a token kind to the sequence of token kinds that follow it
// along the single path that was explored after it (used by callers to
// detect multi-word keyword phrases or an immediately following open
// parenthesis). Rules maps a preferred rule id to the call stack of rule
// indices that were active when the rule was encountered, outermost first.
type CandidatesCollection struct {
	Tokens map[int][]int
	Rules  map[int][]int
}

// CodeCompletionCore computes CandidatesCollection values for a given
// parser/ATN. A single instance can be reused across calls to
// CollectCandidates; each call starts from a clean slate.
type CodeCompletionCore struct {
	parser antlr.Parser
	atn    *antlr.ATN

	// IgnoredTokens lists token kinds that are never reported as token
	// candidates (operators, punctuation, literals, identifiers, EOF).
	IgnoredTokens map[int]bool

	// PreferredRules lists rule ids whose entry is treated as a semantic
	// placeholder: the collector records the rule instead of expanding
	// into its own tokens.
	PreferredRules map[int]bool

	// NoSeparatorRequiredFor lists token kinds that don't need whitespace
	// before them. Reserved for callers that derive a caret token index
	// from a raw character offset; this implementation receives the caret
	// token index already resolved, so the field only documents the
	// configuration contract.
	NoSeparatorRequiredFor map[int]bool

	candidates      *CandidatesCollection
	ruleEndCache    map[int]map[int][]int
	tokens          []int
	tokenStartIndex int
	statesProcessed int
}

// New returns a collector bound to parser's ATN.
func New(parser antlr.Parser) *CodeCompletionCore {
	return &CodeCompletionCore{
		parser: parser,
		atn:    parser.GetATN(),
	}
}

// StatesProcessed returns the number of ATN states visited by the most
// recent CollectCandidates call, mainly useful for tests and diagnostics.
func (c *CodeCompletionCore) StatesProcessed() int {
	return c.statesProcessed
}

// CollectCandidates walks the ATN starting at context's rule (or the
// parser's start rule if context is nil) up to caretTokenIndex and returns
// the tokens and preferred rules that could legally appear there.
func (c *CodeCompletionCore) CollectCandidates(caretTokenIndex int, context antlr.ParserRuleContext) *CandidatesCollection {
	c.candidates = &CandidatesCollection{
		Tokens: make(map[int][]int),
		Rules:  make(map[int][]int),
	}
	c.ruleEndCache = make(map[int]map[int][]int)
	c.statesProcessed = 0

	if context == nil {
		c.tokenStartIndex = 0
	} else {
		c.tokenStartIndex = context.GetStart().GetTokenIndex()
	}

	c.tokens = c.collectTokenTypes(caretTokenIndex)

	var callStack []int
	startRule := 0
	if context != nil {
		startRule = context.GetRuleIndex()
	}

	c.processRule(startRule, 0, callStack)

	return c.candidates
}

// collectTokenTypes returns the token kinds from the configured start index
// up to and including caretTokenIndex (or up to EOF, whichever comes first).
func (c *CodeCompletionCore) collectTokenTypes(caretTokenIndex int) []int {
	stream := c.parser.GetTokenStream()
	savedIndex := stream.Index()
	stream.Seek(c.tokenStartIndex)

	var tokens []int
	for offset := 1; ; offset++ {
		tok := stream.LT(offset)
		tokens = append(tokens, tok.GetTokenType())
		if tok.GetTokenIndex() >= caretTokenIndex || tok.GetTokenType() == antlr.TokenEOF {
			break
		}
	}

	stream.Seek(savedIndex)
	return tokens
}

// atCaret reports whether tokenListIndex refers to the caret position:
// the last entry of c.tokens, for which there is nothing left to match and
// candidates are collected instead.
func (c *CodeCompletionCore) atCaret(tokenListIndex int) bool {
	return tokenListIndex >= len(c.tokens)-1
}

// visitKey identifies a (state, tokenListIndex) pair for cycle detection
// within a single rule invocation.
func visitKey(stateNumber, tokenListIndex int) int64 {
	return int64(stateNumber)<<32 | int64(uint32(tokenListIndex))
}

// processRule walks ruleIndex's ATN starting at its rule-start state,
// beginning at tokenListIndex, and returns the set of tokenListIndex values
// at which the rule could successfully end (deduplicated). The result is
// memoized per (ruleIndex, tokenListIndex) pair so recursive or repeatedly
// invoked rules are only walked once for a given starting position.
func (c *CodeCompletionCore) processRule(ruleIndex, tokenListIndex int, callStack []int) []int {
	byIndex, ok := c.ruleEndCache[ruleIndex]
	if !ok {
		byIndex = make(map[int][]int)
		c.ruleEndCache[ruleIndex] = byIndex
	} else if cached, done := byIndex[tokenListIndex]; done {
		return cached
	}

	callStack = append(callStack, ruleIndex)
	start := c.atn.GetRuleToStartState(ruleIndex)

	visited := make(map[int64]bool)
	ends := c.walk(start, tokenListIndex, callStack, visited)

	byIndex[tokenListIndex] = ends
	return ends
}

// walk performs a depth-first traversal of the ATN states reachable from
// state without leaving the rule state belongs to, collecting token and
// rule candidates at the caret and returning the tokenListIndex values at
// which a rule-stop state of the current rule was reached.
func (c *CodeCompletionCore) walk(state antlr.ATNState, tokenListIndex int, callStack []int, visited map[int64]bool) []int {
	c.statesProcessed++

	key := visitKey(state.GetStateNumber(), tokenListIndex)
	if visited[key] {
		return nil
	}
	visited[key] = true

	if state.GetStateType() == antlr.ATNStateRuleStop {
		return []int{tokenListIndex}
	}

	var ends []int
	for _, transition := range state.GetTransitions() {
		ends = append(ends, c.followTransition(transition, tokenListIndex, callStack, visited)...)
	}
	return dedupInts(ends)
}

func (c *CodeCompletionCore) followTransition(transition antlr.Transition, tokenListIndex int, callStack []int, visited map[int64]bool) []int {
	switch {
	case transition.GetSerializationType() == antlr.TransitionRULE:
		ruleTransition := transition.(*antlr.RuleTransition)
		return c.followRuleTransition(ruleTransition, tokenListIndex, callStack, visited)

	case transition.GetSerializationType() == antlr.TransitionPRECEDENCE:
		predicateTransition := transition.(*antlr.PredicateTransition)
		if !c.checkPredicate(predicateTransition) {
			return nil
		}
		return c.walk(transition.GetTarget(), tokenListIndex, callStack, visited)

	case transition.GetIsEpsilon():
		return c.walk(transition.GetTarget(), tokenListIndex, callStack, visited)

	case transition.GetSerializationType() == antlr.TransitionWILDCARD:
		if c.atCaret(tokenListIndex) {
			return nil
		}
		return c.walk(transition.GetTarget(), tokenListIndex+1, callStack, visited)

	default:
		return c.followTokenTransition(transition, tokenListIndex, callStack, visited)
	}
}

// checkPredicate optimistically evaluates a precedence predicate against an
// empty parser context. Without a live parse there is no real context to
// evaluate against; failing open means completion degrades towards "more
// candidates" rather than silently dropping legal ones.
func (c *CodeCompletionCore) checkPredicate(transition *antlr.PredicateTransition) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = true
		}
	}()
	return transition.GetPredicate().Evaluate(c.parser, antlr.ParserRuleContextEmpty)
}

func (c *CodeCompletionCore) followRuleTransition(transition *antlr.RuleTransition, tokenListIndex int, callStack []int, visited map[int64]bool) []int {
	targetRule := transition.GetTarget().GetRuleIndex()

	if c.PreferredRules[targetRule] && c.atCaret(tokenListIndex) {
		path := append(append([]int{}, callStack...), targetRule)
		if _, exists := c.candidates.Rules[targetRule]; !exists {
			c.candidates.Rules[targetRule] = path
		}
		// The caret is at or inside this rule; nothing legally follows it
		// from this branch's point of view, so don't continue matching.
		return nil
	}

	ruleEnds := c.processRule(targetRule, tokenListIndex, callStack)

	var ends []int
	for _, exit := range ruleEnds {
		ends = append(ends, c.walk(transition.GetFollowState(), exit, callStack, visited)...)
	}
	return ends
}

func (c *CodeCompletionCore) followTokenTransition(transition antlr.Transition, tokenListIndex int, callStack []int, visited map[int64]bool) []int {
	label := transition.GetLabel()
	if label == nil {
		return nil
	}
	set := label
	if transition.GetSerializationType() == antlr.TransitionNOTSET {
		set = set.Complement(antlr.TokenMinUserTokenType, c.atn.GetMaxTokenType())
	}

	if c.atCaret(tokenListIndex) {
		for _, token := range set.ToList() {
			if token < 0 || c.IgnoredTokens[token] {
				continue
			}
			if _, exists := c.candidates.Tokens[token]; !exists {
				c.candidates.Tokens[token] = c.followingTokens(transition.GetTarget())
			}
		}
		return nil
	}

	if !set.Contains(c.tokens[tokenListIndex]) {
		return nil
	}

	return c.walk(transition.GetTarget(), tokenListIndex+1, callStack, visited)
}

// followingTokens returns a short, single-path sequence of literal token
// kinds reachable from state by following epsilon and atom transitions,
// used to render multi-word keyword phrases and to detect an immediately
// following open parenthesis (function-call heuristic).
func (c *CodeCompletionCore) followingTokens(state antlr.ATNState) []int {
	const maxDepth = 3

	var result []int
	current := state
	for depth := 0; depth < maxDepth; depth++ {
		transitions := current.GetTransitions()
		if len(transitions) == 0 {
			break
		}

		advanced := false
		for _, transition := range transitions {
			switch {
			case transition.GetIsEpsilon() || transition.GetSerializationType() == antlr.TransitionPRECEDENCE:
				current = transition.GetTarget()
				advanced = true
			case transition.GetSerializationType() == antlr.TransitionATOM:
				label := transition.GetLabel()
				if label != nil {
					list := label.ToList()
					if len(list) == 1 {
						result = append(result, list[0])
						current = transition.GetTarget()
						advanced = true
					}
				}
			}
			if advanced {
				break
			}
		}

		if !advanced {
			break
		}
	}
	return result
}

func dedupInts(in []int) []int {
	if len(in) < 2 {
		return in
	}
	seen := make(map[int]bool, len(in))
	out := in[:0]
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
