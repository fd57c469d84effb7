package search

import (
	"fmt"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

// PruneKind tells which bound caused a cutoff.
type PruneKind int

const (
	PruneAlpha PruneKind = iota
	PruneBeta
)

// TreeNode records one node of the explored game tree.
// A nil root disables recording; every method is safe on a nil receiver.
type TreeNode struct {
	Move            entity.Move
	Children        []*TreeNode
	Alpha           int
	Beta            int
	Value           int
	Pruned          bool
	Comment         string
	SpaceAllocation int
	Selected        bool
}

func NewTreeNode(m entity.Move) *TreeNode {
	return &TreeNode{Move: m, Alpha: -infinity, Beta: infinity}
}

// AddChild appends a node for m with the window it was searched with.
func (that *TreeNode) AddChild(m entity.Move, alpha, beta int) *TreeNode {
	if that == nil {
		return nil
	}

	child := &TreeNode{Move: m, Alpha: alpha, Beta: beta}
	that.Children = append(that.Children, child)

	return child
}

func (that *TreeNode) SetValue(value int) {
	if that == nil {
		return
	}

	that.Value = value
}

// Select flags the child holding m as the chosen line.
func (that *TreeNode) Select(m entity.Move) {
	if that == nil || m == nil {
		return
	}

	for _, child := range that.Children {
		if child.Move == m {
			child.Selected = true

			return
		}
	}
}

// MarkPruned adds the skipped moves as pruned leaves with the reason for the cutoff.
func (that *TreeNode) MarkPruned(skipped []entity.Move, value, threshold int, kind PruneKind) {
	if that == nil {
		return
	}

	comment := fmt.Sprintf("Children pruned because %d >= %d", value, threshold)
	if kind == PruneAlpha {
		comment = fmt.Sprintf("Children pruned because %d <= %d", value, threshold)
	}

	for _, m := range skipped {
		that.Children = append(that.Children, &TreeNode{
			Move:    m,
			Value:   m.Value(),
			Pruned:  true,
			Comment: comment,
		})
	}
}

// MarkCutoff marks the skipped moves against the bound the side to move crossed.
func (that *TreeNode) MarkCutoff(skipped []entity.Move, value, alpha, beta int, player1 bool) {
	if player1 {
		that.MarkPruned(skipped, value, beta, PruneBeta)
	} else {
		that.MarkPruned(skipped, value, alpha, PruneAlpha)
	}
}

// AllocateSpace sets each node's share of horizontal layout space (leaves get 1) and returns the root's.
func (that *TreeNode) AllocateSpace() int {
	if that == nil {
		return 0
	}

	if len(that.Children) == 0 {
		that.SpaceAllocation = 1

		return 1
	}

	total := 0
	for _, child := range that.Children {
		total += child.AllocateSpace()
	}

	that.SpaceAllocation = total

	return total
}

// Size counts the nodes in the subtree.
func (that *TreeNode) Size() int {
	if that == nil {
		return 0
	}

	n := 1
	for _, child := range that.Children {
		n += child.Size()
	}

	return n
}

// SelectedLine follows the selected children from this node.
func (that *TreeNode) SelectedLine() []entity.Move {
	var line []entity.Move

	node := that
	for node != nil {
		var next *TreeNode
		for _, child := range node.Children {
			if child.Selected {
				next = child

				break
			}
		}

		if next == nil {
			break
		}

		line = append(line, next.Move)
		node = next
	}

	return line
}
