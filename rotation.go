package imgixurl

// Rotation single rotate, flip or orient option
type Rotation interface {
	rotationParams() []Param
}

type rotateOpt int

func (o rotateOpt) rotationParams() []Param {
	return []Param{{"rot", itoa(int(o))}}
}

// Rotate rotate by degrees, normalized into 0-359
func Rotate(deg int) Rotation {
	return rotateOpt(((deg % 360) + 360) % 360)
}

type flipOpt string

func (o flipOpt) rotationParams() []Param {
	return []Param{{"flip", string(o)}}
}

// flip options; both axes concatenate onto a single flip parameter with no
// separator
var (
	FlipHorizontal Rotation = flipOpt("h")
	FlipVertical   Rotation = flipOpt("v")
)

type orientOpt int

func (o orientOpt) rotationParams() []Param {
	return []Param{{"or", itoa(int(o))}}
}

// orientation by compass direction, as Exif orientation codes
var (
	OrientNorth Rotation = orientOpt(1)
	OrientEast  Rotation = orientOpt(6)
	OrientSouth Rotation = orientOpt(3)
	OrientWest  Rotation = orientOpt(8)
)

func encodeRotations(opts []Rotation) []Param {
	var ps []Param
	flipAt := -1
	for _, o := range opts {
		for _, p := range o.rotationParams() {
			if p.Name == "flip" {
				if flipAt < 0 {
					flipAt = len(ps)
					ps = append(ps, p)
				} else {
					ps[flipAt].Value += p.Value
				}
				continue
			}
			ps = append(ps, p)
		}
	}
	return ps
}
