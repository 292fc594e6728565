package search

// acNode is an internal automaton node. matchLen > 0 marks a node at
// which some needle ends (its length), propagated along failure links
// so suffix matches are not missed.
type acNode struct {
	next     map[byte]*acNode
	fail     *acNode
	matchLen int
}

// AhoCorasickFactory holds a compiled multi-pattern automaton. It
// matches a set of N >= 1 needles in a single haystack pass; with one
// needle it degrades to plain failure-function search.
type AhoCorasickFactory struct {
	root *acNode
}

// NewAhoCorasick builds the trie and BFS failure links from the given
// needle set. Needle bytes are consumed during construction and not
// retained. Every needle must be non-empty.
func NewAhoCorasick(needles ...[]byte) (*AhoCorasickFactory, error) {
	if len(needles) == 0 {
		return nil, ErrNoNeedles
	}
	root := &acNode{next: make(map[byte]*acNode)}
	for _, needle := range needles {
		if len(needle) == 0 {
			return nil, ErrEmptyNeedle
		}
		cur := root
		for _, b := range needle {
			nxt, ok := cur.next[b]
			if !ok {
				nxt = &acNode{next: make(map[byte]*acNode)}
				cur.next[b] = nxt
			}
			cur = nxt
		}
		if cur.matchLen == 0 || len(needle) < cur.matchLen {
			cur.matchLen = len(needle)
		}
	}

	// BFS failure links
	queue := make([]*acNode, 0, len(root.next))
	for _, n := range root.next {
		n.fail = root
		queue = append(queue, n)
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for b, nxt := range n.next {
			f := n.fail
			for f != root && f.next[b] == nil {
				f = f.fail
			}
			if fn := f.next[b]; fn != nil && fn != nxt {
				nxt.fail = fn
			} else {
				nxt.fail = root
			}
			if nxt.matchLen == 0 && nxt.fail.matchLen > 0 {
				nxt.matchLen = nxt.fail.matchLen
			}
			queue = append(queue, nxt)
		}
	}
	return &AhoCorasickFactory{root: root}, nil
}

func (f *AhoCorasickFactory) NewProcessor() Processor {
	return &ahoProcessor{f: f, cur: f.root, found: -1}
}

type ahoProcessor struct {
	f     *AhoCorasickFactory
	cur   *acNode
	pos   int
	found int
}

func (p *ahoProcessor) Process(b byte) bool {
	i := p.pos
	p.pos++
	n := p.cur
	for n != p.f.root && n.next[b] == nil {
		n = n.fail
	}
	if nxt := n.next[b]; nxt != nil {
		n = nxt
	}
	p.cur = n
	if n.matchLen > 0 {
		p.found = i - n.matchLen + 1
		return false
	}
	return true
}

func (p *ahoProcessor) Found() int { return p.found }
