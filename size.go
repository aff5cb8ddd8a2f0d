package imgixurl

// Size single size, crop or fit option
type Size interface {
	sizeParams() []Param
}

type dimensionOpt struct {
	key string
	px  int
}

func (o dimensionOpt) sizeParams() []Param {
	return []Param{{o.key, itoa(o.px)}}
}

type relDimensionOpt struct {
	key string
	f   float64
}

func (o relDimensionOpt) sizeParams() []Param {
	return []Param{{o.key, ftoa(o.f)}}
}

// Width output width in pixels
func Width(px int) Size {
	return dimensionOpt{"w", px}
}

// Height output height in pixels
func Height(px int) Size {
	return dimensionOpt{"h", px}
}

// RelativeWidth output width as a 0-1 fraction of the source width
func RelativeWidth(f float64) Size {
	return relDimensionOpt{"w", clamp(0, 1, f)}
}

// RelativeHeight output height as a 0-1 fraction of the source height
func RelativeHeight(f float64) Size {
	return relDimensionOpt{"h", clamp(0, 1, f)}
}

// MaxWidth upper bound on the output width in pixels
func MaxWidth(px int) Size {
	return dimensionOpt{"max-w", px}
}

// MaxHeight upper bound on the output height in pixels
func MaxHeight(px int) Size {
	return dimensionOpt{"max-h", px}
}

// MinWidth lower bound on the output width in pixels
func MinWidth(px int) Size {
	return dimensionOpt{"min-w", px}
}

// MinHeight lower bound on the output height in pixels
func MinHeight(px int) Size {
	return dimensionOpt{"min-h", px}
}

// CropMode crop behavior applied when resizing changes the aspect ratio
type CropMode interface {
	cropParams() []Param
}

type cropKeyword string

func (k cropKeyword) cropParams() []Param {
	return []Param{{"crop", string(k)}}
}

// crop mode keywords; repeated modes comma-join onto one crop parameter
var (
	CropTop     CropMode = cropKeyword("top")
	CropBottom  CropMode = cropKeyword("bottom")
	CropLeft    CropMode = cropKeyword("left")
	CropRight   CropMode = cropKeyword("right")
	CropFaces   CropMode = cropKeyword("faces")
	CropEdges   CropMode = cropKeyword("edges")
	CropEntropy CropMode = cropKeyword("entropy")
)

type focalPointOpt struct {
	x, y, z float64
}

func (o focalPointOpt) cropParams() []Param {
	return []Param{
		{"fp-x", ftoa(o.x)},
		{"fp-y", ftoa(o.y)},
		{"fp-z", ftoa(o.z)},
	}
}

// CropFocalPoint crop around a focal point given as 0-1 source fractions
// plus a zoom level; emits fp-x, fp-y, fp-z and no crop keyword
func CropFocalPoint(x, y, zoom float64) CropMode {
	return focalPointOpt{clamp(0, 1, x), clamp(0, 1, y), zoom}
}

type cropOpt struct {
	mode CropMode
}

func (o cropOpt) sizeParams() []Param {
	return o.mode.cropParams()
}

// Crop select the crop behavior
func Crop(mode CropMode) Size {
	return cropOpt{mode}
}

// FitMode resize behavior fitting the image into the requested dimensions
type FitMode interface {
	fitParams() []Param
}

type fitKeyword string

func (k fitKeyword) fitParams() []Param {
	return []Param{{"fit", string(k)}}
}

// fit mode keywords
var (
	FitClamp    FitMode = fitKeyword("clamp")
	FitClip     FitMode = fitKeyword("clip")
	FitCrop     FitMode = fitKeyword("crop")
	FitFaceArea FitMode = fitKeyword("facearea")
	FitMax      FitMode = fitKeyword("max")
	FitMin      FitMode = fitKeyword("min")
	FitScale    FitMode = fitKeyword("scale")
)

type faceAreaOpt struct {
	index int
	pad   float64
}

func (o faceAreaOpt) fitParams() []Param {
	return []Param{
		{"fit", "facearea"},
		{"faceindex", itoa(o.index)},
		{"facepad", ftoa(o.pad)},
	}
}

// FitFaceAreaWith facearea fit targeting one detected face with padding
// around it
func FitFaceAreaWith(faceIndex int, facePad float64) FitMode {
	return faceAreaOpt{faceIndex, facePad}
}

type fillOpt struct {
	key   string
	color *Color
}

func (o fillOpt) fitParams() []Param {
	ps := []Param{{"fit", o.key}}
	switch {
	case o.color == nil:
		ps = append(ps, Param{"fill", "blur"})
	case o.color.IsTransparent():
		// transparent fill carries no color information
	default:
		ps = append(ps, Param{"fill", "solid"}, Param{"fill-color", o.color.Hex()})
	}
	return ps
}

// FitFill resize to fit and blur-fill the leftover area
func FitFill() FitMode {
	return fillOpt{key: "fill"}
}

// FitFillColor resize to fit and solid-fill the leftover area; a fully
// transparent color emits no fill parameters
func FitFillColor(c Color) FitMode {
	return fillOpt{key: "fill", color: &c}
}

// FitFillMax like FitFill but never upscales beyond the source
func FitFillMax() FitMode {
	return fillOpt{key: "fillmax"}
}

// FitFillMaxColor like FitFillColor but never upscales beyond the source
func FitFillMaxColor(c Color) FitMode {
	return fillOpt{key: "fillmax", color: &c}
}

type fitOpt struct {
	mode FitMode
}

func (o fitOpt) sizeParams() []Param {
	return o.mode.fitParams()
}

// Fit select the resize behavior
func Fit(mode FitMode) Size {
	return fitOpt{mode}
}

type aspectRatioOpt struct {
	w, h int
}

func (o aspectRatioOpt) sizeParams() []Param {
	return []Param{{"ar", itoa(o.w) + ":" + itoa(o.h)}}
}

// AspectRatio target aspect ratio as W:H
func AspectRatio(w, h int) Size {
	return aspectRatioOpt{w, h}
}

// RectCoord one source rectangle coordinate: absolute pixels, a 0-1 source
// fraction, or a named anchor
type RectCoord struct {
	v string
}

// RectAbs absolute pixel coordinate
func RectAbs(px int) RectCoord {
	return RectCoord{itoa(px)}
}

// RectRel coordinate as a 0-1 fraction of the source dimension
func RectRel(f float64) RectCoord {
	return RectCoord{ftoa(clamp(0, 1, f))}
}

// named rect anchors; left, center, right position x and top, middle,
// bottom position y
var (
	RectLeft   = RectCoord{"left"}
	RectCenter = RectCoord{"center"}
	RectRight  = RectCoord{"right"}
	RectTop    = RectCoord{"top"}
	RectMiddle = RectCoord{"middle"}
	RectBottom = RectCoord{"bottom"}
)

type sourceRectOpt struct {
	x, y RectCoord
	w, h int
}

func (o sourceRectOpt) sizeParams() []Param {
	return []Param{{"rect", o.x.v + "," + o.y.v + "," + itoa(o.w) + "," + itoa(o.h)}}
}

// SourceRect select a source sub-rectangle before any other transformation
func SourceRect(x, y RectCoord, w, h int) Size {
	return sourceRectOpt{x, y, w, h}
}

func encodeSizes(opts []Size) []Param {
	var ps []Param
	for _, o := range opts {
		ps = append(ps, o.sizeParams()...)
	}
	return ps
}
