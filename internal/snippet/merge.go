package snippet

import (
	"container/heap"

	"github.com/pkg/errors"
)

// candidate is a possible merge of the adjacent spans left and right (right == left+1).
type candidate struct {
	gap    int // characters between the two spans
	offset int // offset of the left span
	left   int
	right  int
}

func (c candidate) less(o candidate) bool {
	if c.gap != o.gap {
		return c.gap < o.gap
	}
	if c.offset != o.offset {
		return c.offset < o.offset
	}
	if c.left != o.left {
		return c.left < o.left
	}
	return c.right < o.right
}

type candidateQueue []candidate

func (q candidateQueue) Len() int            { return len(q) }
func (q candidateQueue) Less(i, j int) bool  { return q[i].less(q[j]) }
func (q candidateQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *candidateQueue) Push(x interface{}) { *q = append(*q, x.(candidate)) }
func (q *candidateQueue) Pop() interface{} {
	old := *q
	c := old[len(old)-1]
	*q = old[:len(old)-1]
	return c
}

const unassigned = -1

// merger owns the snippets while spans are grouped. Snippets absorbed by another one are marked
// discarded rather than removed, so arena indexes stay valid.
type merger struct {
	text  []rune
	spans []Span
	upper int

	arena     []*Snippet
	discarded []bool
	owner     []int // span index -> arena index, or unassigned
}

// Merge groups spans into snippets. Adjacent spans are merged closest-first (ties broken by the
// leftmost offset) as long as the merged snippet stays within upper characters. Every span ends
// up in exactly one of the returned snippets, which are in creation order.
func Merge(text []rune, spans []Span, upper int) ([]*Snippet, error) {
	if len(spans) == 0 {
		return nil, nil
	}
	if err := validateSpans(spans, len(text)); err != nil {
		return nil, err
	}
	if len(spans) == 1 {
		s, err := singleton(text, spans[0])
		if err != nil {
			return nil, err
		}
		return []*Snippet{s}, nil
	}

	m := &merger{
		text:  text,
		spans: spans,
		upper: upper,
		owner: make([]int, len(spans)),
	}
	for i := range m.owner {
		m.owner[i] = unassigned
	}

	q := make(candidateQueue, 0, len(spans)-1)
	for i := 1; i < len(spans); i++ {
		q = append(q, candidate{
			gap:    spans[i].Offset - spans[i-1].End(),
			offset: spans[i-1].Offset,
			left:   i - 1,
			right:  i,
		})
	}
	heap.Init(&q)
	for q.Len() > 0 {
		c := heap.Pop(&q).(candidate)
		if err := m.resolve(c); err != nil {
			return nil, errors.WithMessagef(err, "merging spans %d and %d", c.left, c.right)
		}
	}

	var snippets []*Snippet
	for i, s := range m.arena {
		if !m.discarded[i] {
			snippets = append(snippets, s)
		}
	}
	return snippets, nil
}

func (m *merger) resolve(c candidate) error {
	left, right := m.spans[c.left], m.spans[c.right]
	li, ri := m.owner[c.left], m.owner[c.right]

	switch {
	case li != unassigned && ri != unassigned:
		if li == ri {
			return nil
		}
		s1, s2 := m.arena[li], m.arena[ri]
		connect := s2.End() - s1.End()
		if s1.Len()+connect > m.upper {
			return nil
		}
		if err := s1.PushBack(m.text[s1.End():s2.End()]); err != nil {
			return err
		}
		for _, span := range s2.Spans() {
			if err := s1.Attach(span); err != nil {
				return err
			}
		}
		for i, o := range m.owner {
			if o == ri {
				m.owner[i] = li
			}
		}
		m.discarded[ri] = true
		return nil

	case li != unassigned:
		s1 := m.arena[li]
		if s1.Len()+(right.End()-s1.End()) >= m.upper {
			return m.materialize(c.right)
		}
		if err := s1.PushBack(m.text[s1.End():right.End()]); err != nil {
			return err
		}
		return m.assign(c.right, li)

	case ri != unassigned:
		s2 := m.arena[ri]
		if s2.Len()+(s2.Offset()-left.Offset) >= m.upper {
			return m.materialize(c.left)
		}
		if err := s2.PushFront(m.text[left.Offset:s2.Offset()]); err != nil {
			return err
		}
		return m.assign(c.left, ri)

	default:
		if right.End()-left.Offset >= m.upper {
			if err := m.materialize(c.left); err != nil {
				return err
			}
			return m.materialize(c.right)
		}
		s, err := New(left.Offset, m.text[left.Offset:right.End()])
		if err != nil {
			return err
		}
		idx := m.add(s)
		if err := m.assign(c.left, idx); err != nil {
			return err
		}
		return m.assign(c.right, idx)
	}
}

// add appends s to the arena and returns its index.
func (m *merger) add(s *Snippet) int {
	m.arena = append(m.arena, s)
	m.discarded = append(m.discarded, false)
	return len(m.arena) - 1
}

// assign attaches span i to the snippet at arena index idx.
func (m *merger) assign(i, idx int) error {
	if err := m.arena[idx].Attach(m.spans[i]); err != nil {
		return err
	}
	m.owner[i] = idx
	return nil
}

// materialize makes span i its own snippet.
func (m *merger) materialize(i int) error {
	s, err := singleton(m.text, m.spans[i])
	if err != nil {
		return err
	}
	m.owner[i] = m.add(s)
	return nil
}
