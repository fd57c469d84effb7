package gogame

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// EyeType is the broad kind of an eye shape.
type EyeType int

const (
	FalseEye EyeType = iota
	SingleEye
	BigEye
	ProbableTwoEyes
	GuaranteedTwoEyes
	TerritorialEye
)

// Value is how many eyes the type is worth to its group.
func (that EyeType) Value() float64 {
	switch that {
	case FalseEye:
		return 0.19
	case SingleEye:
		return 1.0
	case BigEye:
		return 1.1
	case ProbableTwoEyes, TerritorialEye:
		return 1.6
	default:
		return 2.0
	}
}

func (that EyeType) String() string {
	return [...]string{"false eye", "single eye", "big eye", "probable two eyes", "guaranteed two eyes", "territorial eye"}[that]
}

// EyeStatus is the life status of an eye once enemy stones inside it are taken into account.
type EyeStatus int

const (
	StatusNakade EyeStatus = iota
	StatusUnsettled
	StatusAlive
	StatusAliveInAtari
)

func (that EyeStatus) String() string {
	return [...]string{"nakade", "unsettled", "alive", "alive in atari"}[that]
}

// EyeShape is an entry of the shape table. Vital and end points are encoded as
// neighbor count + (sum of the neighbors' neighbor counts) / 100.
type EyeShape struct {
	Name        string
	Life        bool
	Size        int
	NumPatterns int
	Type        EyeType
	Vitals      []float64
}

var (
	falseEyeShape       = &EyeShape{Name: "FalseEye", Size: 1, Type: FalseEye}
	territorialEyeShape = &EyeShape{Name: "TerritorialEye", Life: true, Size: 8, Type: TerritorialEye}
)

var eyeShapes = map[string]*EyeShape{}

func init() {
	for _, s := range []*EyeShape{
		{Name: "E0", Size: 1, NumPatterns: 1, Type: SingleEye},
		{Name: "E11", Size: 2, NumPatterns: 1, Type: SingleEye},
		{Name: "E112", Size: 3, NumPatterns: 2, Type: BigEye, Vitals: []float64{2.02}},

		{Name: "E1122", Size: 4, NumPatterns: 3, Type: ProbableTwoEyes, Vitals: []float64{2.03, 2.03}},
		{Name: "E1113", Size: 4, NumPatterns: 1, Type: BigEye, Vitals: []float64{1.03}},
		{Name: "E2222", Size: 4, NumPatterns: 1, Type: SingleEye},

		{Name: "E11222", Life: true, Size: 5, NumPatterns: 7, Type: GuaranteedTwoEyes},
		{Name: "E11123", Size: 5, NumPatterns: 1, Type: ProbableTwoEyes, Vitals: []float64{3.04, 2.04}},
		{Name: "E11114", Size: 5, NumPatterns: 1, Type: BigEye, Vitals: []float64{4.04}},
		{Name: "E12223", Size: 5, NumPatterns: 1, Type: BigEye, Vitals: []float64{3.05}},

		{Name: "E112222", Life: true, Size: 6, NumPatterns: 13, Type: GuaranteedTwoEyes},
		{Name: "E111223", Life: true, Size: 6, NumPatterns: 12, Type: GuaranteedTwoEyes},
		{Name: "E111133", Life: true, Size: 6, NumPatterns: 1, Type: GuaranteedTwoEyes},
		{Name: "E112233", Size: 6, NumPatterns: 4, Type: ProbableTwoEyes, Vitals: []float64{3.06, 3.06}},
		{Name: "E122223", Size: 6, NumPatterns: 2, Type: ProbableTwoEyes, Vitals: []float64{2.04, 3.06}},
		{Name: "E112224", Size: 6, NumPatterns: 1, Type: BigEye, Vitals: []float64{4.06}},
		{Name: "E111124", Size: 6, NumPatterns: 1, Type: ProbableTwoEyes, Vitals: []float64{2.05, 4.05}},
		{Name: "E222233", Size: 6, NumPatterns: 1, Type: ProbableTwoEyes, Vitals: []float64{3.07, 3.07}},

		{Name: "E1122222", Life: true, Size: 7, NumPatterns: 30, Type: GuaranteedTwoEyes},
		{Name: "E1112223", Life: true, Size: 7, NumPatterns: 40, Type: GuaranteedTwoEyes},
		{Name: "E1122233", Life: true, Size: 7, NumPatterns: 11, Type: GuaranteedTwoEyes},
		{Name: "E1111233", Life: true, Size: 7, NumPatterns: 8, Type: GuaranteedTwoEyes},
		{Name: "E1222223", Life: true, Size: 7, NumPatterns: 5, Type: GuaranteedTwoEyes},
		{Name: "E1111224", Life: true, Size: 7, NumPatterns: 4, Type: GuaranteedTwoEyes},
		{Name: "E1112333", Life: true, Size: 7, NumPatterns: 2, Type: GuaranteedTwoEyes},
		{Name: "E1222333", Life: true, Size: 7, NumPatterns: 2, Type: GuaranteedTwoEyes},
		{Name: "E1112234", Size: 7, NumPatterns: 2, Type: ProbableTwoEyes, Vitals: []float64{3.07, 4.07}},
		{Name: "E1222234", Size: 7, NumPatterns: 1, Type: BigEye, Vitals: []float64{4.08}},
		{Name: "E1122224", Size: 7, NumPatterns: 1, Type: ProbableTwoEyes, Vitals: []float64{2.05, 4.07}},
		{Name: "E2222224", Size: 7, NumPatterns: 1, Type: BigEye, Vitals: []float64{4.10}},
	} {
		eyeShapes[s.Name] = s
	}
}

// LookupEyeShape finds a shape by its signature name, e.g. "E11222".
func LookupEyeShape(name string) (*EyeShape, bool) {
	s, ok := eyeShapes[name]

	return s, ok
}

// Eye is a connected region of empty points and near-dead enemy stones bordered by a single group.
type Eye struct {
	group   *Group
	members []*Position
	shape   *EyeShape
	status  EyeStatus
}

func (that *Eye) Group() *Group {
	return that.group
}

func (that *Eye) Members() []*Position {
	return that.members
}

func (that *Eye) Size() int {
	return len(that.members)
}

func (that *Eye) Shape() *EyeShape {
	return that.shape
}

func (that *Eye) Status() EyeStatus {
	return that.status
}

func (that *Eye) Player1() bool {
	return that.group.player1
}

// Value is the eye's contribution to its group's eye count.
func (that *Eye) Value() float64 {
	switch {
	case that.shape.Type == FalseEye:
		return FalseEye.Value()
	case that.status == StatusNakade:
		return SingleEye.Value()
	case that.status == StatusUnsettled:
		return (SingleEye.Value() + that.shape.Type.Value()) / 2
	default:
		return that.shape.Type.Value()
	}
}

func (that *Board) maxEyeSize() int {
	return max(8, that.size*that.size/10)
}

// findEyes assigns eyes to groups, for both sides.
func (that *Board) findEyes() {
	for i := range that.positions {
		that.positions[i].eye = nil
	}

	for _, g := range that.groups {
		g.eyes = nil
	}

	for _, player1 := range []bool{true, false} {
		visited := make([]bool, len(that.positions))

		for i := range that.positions {
			p := &that.positions[i]
			if visited[i] || p.ownedBy(player1) {
				continue
			}

			region, border, ok := that.eyeRegion(p, player1, visited)
			if !ok {
				continue
			}

			eye := &Eye{group: border, members: region}
			eye.shape = that.classify(eye)
			eye.status = that.eyeStatus(eye)
			border.eyes = append(border.eyes, eye)

			for _, m := range region {
				m.eye = eye
			}
		}
	}
}

// maxDeadLiberties - enemy strings inside an eye with more liberties than this may still live.
const maxDeadLiberties = 2

// eyeRegion floods the points not owned by player1 from seed. It is an eye when small enough,
// bordered by exactly one group and holding only near-dead enemy strings.
func (that *Board) eyeRegion(seed *Position, player1 bool, visited []bool) ([]*Position, *Group, bool) {
	stack := []*Position{seed}
	visited[that.index(seed.Loc)] = true

	var (
		region []*Position
		border *Group
	)

	ok := true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, p)

		if p.IsOccupied() && p.str.NumLiberties(that) > maxDeadLiberties {
			ok = false
		}

		for _, n := range that.nobiNeighbors(p.Loc) {
			if n.ownedBy(player1) {
				switch {
				case border == nil:
					border = n.Group()
				case border != n.Group():
					ok = false
				}

				continue
			}

			i := that.index(n.Loc)
			if !visited[i] {
				visited[i] = true
				stack = append(stack, n)
			}
		}
	}

	return region, border, ok && border != nil && len(region) <= that.maxEyeSize()
}

// classify looks the region's neighbor signature up in the shape table.
func (that *Board) classify(eye *Eye) *EyeShape {
	size := len(eye.members)

	switch {
	case size == 1 && that.isFalseEye(eye.members[0], eye.Player1()):
		return falseEyeShape
	case size > 7:
		return territorialEyeShape
	}

	name := that.signature(eye.members)
	if s, ok := eyeShapes[name]; ok {
		return s
	}

	return &EyeShape{Name: name, Size: size, Type: BigEye}
}

// signature is "E" followed by the sorted in-eye neighbor counts of the members.
func (that *Board) signature(members []*Position) string {
	counts := that.eyeNeighborCounts(members)
	sorted := make([]int, 0, len(counts))

	for _, n := range counts {
		sorted = append(sorted, n)
	}

	slices.Sort(sorted)

	var sb strings.Builder
	sb.WriteByte('E')

	for _, n := range sorted {
		sb.WriteString(strconv.Itoa(n))
	}

	return sb.String()
}

func (that *Board) eyeNeighborCounts(members []*Position) map[*Position]int {
	in := make(map[*Position]struct{}, len(members))
	for _, m := range members {
		in[m] = struct{}{}
	}

	counts := make(map[*Position]int, len(members))

	for _, m := range members {
		n := 0
		for _, nb := range that.nobiNeighbors(m.Loc) {
			if _, ok := in[nb]; ok {
				n++
			}
		}

		counts[m] = n
	}

	return counts
}

// isFalseEye - enemy stones on two diagonals, or on one when the point is on the edge.
func (that *Board) isFalseEye(p *Position, player1 bool) bool {
	enemies, offBoard := 0, 0

	for _, d := range diagonalOffsets {
		q := that.Position(p.Loc.Row+d[0], p.Loc.Col+d[1])

		switch {
		case q == nil:
			offBoard++
		case q.ownedBy(!player1):
			enemies++
		}
	}

	if offBoard > 0 {
		return enemies >= 1
	}

	return enemies >= 2
}

func (that *Board) eyeStatus(eye *Eye) EyeStatus {
	var filled []*Position

	for _, m := range eye.members {
		if m.IsOccupied() {
			filled = append(filled, m)
		}
	}

	switch {
	case eye.shape.Life:
		if len(eye.members)-len(filled) == 1 && len(eye.group.Liberties(that)) == 1 {
			return StatusAliveInAtari
		}

		return StatusAlive
	case len(eye.shape.Vitals) > 0:
		return that.vitalPointStatus(eye, filled)
	case len(filled) == 0:
		return StatusAlive
	default:
		return StatusNakade
	}
}

// vitalPointStatus - every vital point filled is nakade, all but one is unsettled.
func (that *Board) vitalPointStatus(eye *Eye, filled []*Position) EyeStatus {
	counts := that.eyeNeighborCounts(eye.members)
	numFilledVitals := 0

	for _, f := range filled {
		code := float64(counts[f])
		sum := 0
		for _, nb := range that.nobiNeighbors(f.Loc) {
			sum += counts[nb]
		}

		code += float64(sum) / 100

		for _, v := range eye.shape.Vitals {
			if math.Abs(v-code) < 0.001 {
				numFilledVitals++

				break
			}
		}
	}

	numVitals := len(eye.shape.Vitals)

	switch {
	case numFilledVitals >= numVitals:
		return StatusNakade
	case numFilledVitals == numVitals-1:
		return StatusUnsettled
	default:
		return StatusAlive
	}
}
