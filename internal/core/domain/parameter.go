package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// ParameterKind is the wire type of a runtime parameter.
type ParameterKind int

const (
	// KindDouble is a floating point parameter.
	KindDouble ParameterKind = iota + 1
	// KindInteger is an integral parameter.
	KindInteger
	// KindBoolean is a true/false parameter.
	KindBoolean
)

func (k ParameterKind) String() string {
	switch k {
	case KindDouble:
		return "double"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Names of the runtime parameters the asset service understands.
const (
	ParamOutputWidth          = "Image Size/Image Sizer Parameters/Output Width"
	ParamOutputHeight         = "Image Size/Image Sizer Parameters/Output Height"
	ParamResolution           = "Image Size/Image Sizer Parameters/Resolution"
	ParamConstrainProportions = "Image Size/Image Sizer Parameters/Constrain Proportions"
	ParamRotation             = "Rotator/Rotation in degrees/Rotation in degrees"
	ParamPadWidth             = "Padder/Pad Primitive Parameter/Width"
	ParamPadHeight            = "Padder/Pad Primitive Parameter/Height"
	ParamJPEGQuality          = "JPEG Encoder/JPEG Quality/JPEG Quality"
)

var parameterKinds = map[string]ParameterKind{
	ParamOutputWidth:          KindDouble,
	ParamOutputHeight:         KindDouble,
	ParamResolution:           KindDouble,
	ParamRotation:             KindDouble,
	ParamPadWidth:             KindInteger,
	ParamPadHeight:            KindInteger,
	ParamJPEGQuality:          KindInteger,
	ParamConstrainProportions: KindBoolean,
}

// TypedParameter is a runtime parameter converted to its wire type.
type TypedParameter struct {
	Name  string
	Kind  ParameterKind
	Value any
}

// TypeParameter converts a runtime parameter to the type its name calls for.
func TypeParameter(p RuntimeParameter) (TypedParameter, error) {
	kind, ok := parameterKinds[p.Name]
	if !ok {
		return TypedParameter{}, zerr.With(zerr.Wrap(ErrUnknownParameter, "cannot type parameter"), "name", p.Name)
	}

	var (
		value any
		err   error
	)
	switch kind {
	case KindDouble:
		value, err = strconv.ParseFloat(p.Value, 64)
	case KindInteger:
		value, err = strconv.ParseInt(p.Value, 10, 64)
	case KindBoolean:
		value, err = strconv.ParseBool(p.Value)
	}
	if err != nil {
		wrapped := zerr.Wrap(ErrInvalidParameterValue, "cannot convert parameter")
		wrapped = zerr.With(wrapped, "name", p.Name)
		wrapped = zerr.With(wrapped, "value", p.Value)
		return TypedParameter{}, zerr.With(wrapped, "kind", kind.String())
	}

	return TypedParameter{Name: p.Name, Kind: kind, Value: value}, nil
}

// TypeParameters converts every parameter it can and reports the rest.
// Dropped parameters keep their position out of the result; the caller decides how to log them.
func TypeParameters(params []RuntimeParameter) ([]TypedParameter, []error) {
	typed := make([]TypedParameter, 0, len(params))
	var errs []error
	for _, p := range params {
		tp, err := TypeParameter(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		typed = append(typed, tp)
	}
	return typed, errs
}
