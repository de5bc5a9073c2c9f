package analysis

import "github.com/vanboefer/lint-ii/annotation"

// dependencyLengths computes the effective head set and dependency length of
// every token in sentence order. Punctuation tokens keep their annotated
// head for display but their length is fixed at 0, and they never count as
// intervening tokens for anyone else.
func dependencyLengths(toks []annotation.Token) []TokenSDL {
	sdls := make([]TokenSDL, len(toks))
	for i, tok := range toks {
		if tok.IsPunct() {
			sdls[i] = TokenSDL{
				Token:     tok.Text,
				DepLength: 0,
				Heads:     []string{toks[tok.Head].Text},
			}
			continue
		}

		heads := effectiveHeads(toks, i)
		names := make([]string, len(heads))
		length := 0
		for k, h := range heads {
			if n := interveningCount(toks, i, h); n > length {
				length = n
			}
			names[k] = toks[h].Text
		}
		sdls[i] = TokenSDL{Token: tok.Text, DepLength: length, Heads: names}
	}
	return sdls
}

// effectiveHeads resolves the head set of token i.
//
// A conjunct's head is the head of the first conjunct in its chain: conjunct
// chains collapse to a single shared head. A subject whose head is a member
// of a conjunct chain attaches to every conjunct in that chain instead.
func effectiveHeads(toks []annotation.Token, i int) []int {
	h := toks[i].Head

	if toks[i].IsSubject() {
		members := chainMembers(toks, chainFirst(toks, h))
		if len(members) > 1 {
			return members
		}
		return []int{h}
	}

	if toks[i].IsConjunct {
		return []int{toks[chainFirst(toks, i)].Head}
	}

	return []int{h}
}

// chainFirst walks the conjunct chain backward from token i to the first
// conjunct. For a token outside any chain it returns i itself. The walk is
// iterative with a visited set, so a malformed conjunct cycle terminates
// instead of recursing forever.
func chainFirst(toks []annotation.Token, i int) int {
	cur := i
	visited := make(map[int]bool, 4)
	for toks[cur].IsConjunct {
		if visited[cur] {
			break
		}
		visited[cur] = true
		next := toks[cur].Head
		if next == cur {
			break
		}
		cur = next
	}
	return cur
}

// chainMembers returns first plus every conjunct token whose chain resolves
// to first, in sentence order.
func chainMembers(toks []annotation.Token, first int) []int {
	members := []int{first}
	for j, tok := range toks {
		if j != first && tok.IsConjunct && chainFirst(toks, j) == first {
			members = append(members, j)
		}
	}
	return members
}

// interveningCount counts the non-punctuation tokens strictly between
// positions i and h in sentence order.
func interveningCount(toks []annotation.Token, i, h int) int {
	lo, hi := i, h
	if lo > hi {
		lo, hi = hi, lo
	}
	n := 0
	for k := lo + 1; k < hi; k++ {
		if !toks[k].IsPunct() {
			n++
		}
	}
	return n
}
