package weather

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Raw* types mirror the OpenWeatherMap JSON documents. Pointer fields let the
// validator tell an absent field apart from a zero value.

// RawCurrent is the /weather response.
type RawCurrent struct {
	Name       *string        `json:"name" validate:"required"`
	Main       *RawMain       `json:"main" validate:"required"`
	Wind       *RawWind       `json:"wind" validate:"required"`
	Weather    []RawCondition `json:"weather" validate:"required,min=1,dive"`
	Clouds     *RawClouds     `json:"clouds" validate:"required"`
	Visibility *float64       `json:"visibility" validate:"required"`
	Dt         *int64         `json:"dt" validate:"required"`
	Sys        *RawSys        `json:"sys" validate:"required"`
	Timezone   *int           `json:"timezone" validate:"required"`
}

type RawMain struct {
	Temp      *float64 `json:"temp" validate:"required"`
	FeelsLike *float64 `json:"feels_like" validate:"required"`
	TempMin   *float64 `json:"temp_min" validate:"required"`
	TempMax   *float64 `json:"temp_max" validate:"required"`
	Humidity  *int     `json:"humidity" validate:"required"`
	Pressure  *int     `json:"pressure" validate:"required"`
}

type RawWind struct {
	Speed *float64 `json:"speed" validate:"required"`
	Deg   *float64 `json:"deg" validate:"required"`
}

type RawCondition struct {
	Main        *string `json:"main" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Icon        *string `json:"icon" validate:"required"`
}

type RawClouds struct {
	All *int `json:"all" validate:"required"`
}

type RawSys struct {
	Country *string `json:"country" validate:"required"`
	Sunrise *int64  `json:"sunrise" validate:"required"`
	Sunset  *int64  `json:"sunset" validate:"required"`
}

// RawForecast is the /forecast response: 3-hourly samples plus city metadata.
// Samples are validated one by one when they are picked for a day.
type RawForecast struct {
	List []RawSample `json:"list" validate:"required"`
	City *RawCity    `json:"city" validate:"required"`
}

type RawCity struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone *int   `json:"timezone" validate:"required"`
}

// RawSample is one 3-hourly forecast entry.
type RawSample struct {
	Dt      *int64         `json:"dt" validate:"required"`
	Main    *RawSampleMain `json:"main" validate:"required"`
	Weather []RawCondition `json:"weather" validate:"required,min=1,dive"`
	Clouds  *RawClouds     `json:"clouds" validate:"required"`
	Wind    *RawSampleWind `json:"wind" validate:"required"`
	Pop     *float64       `json:"pop" validate:"required"`
	DtTxt   string         `json:"dt_txt,omitempty"`
}

type RawSampleMain struct {
	TempMin  *float64 `json:"temp_min" validate:"required"`
	TempMax  *float64 `json:"temp_max" validate:"required"`
	Humidity *int     `json:"humidity" validate:"required"`
}

type RawSampleWind struct {
	Speed *float64 `json:"speed" validate:"required"`
}

var payloadValidator = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkPayload runs presence checks on a decoded payload.
func checkPayload(op string, payload any) error {
	err := payloadValidator.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &MalformedResponseError{Op: op, Field: fieldPath(verrs[0].Namespace()), Err: err}
	}
	return &MalformedResponseError{Op: op, Err: err}
}

// fieldPath drops the leading type name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// DecodeCurrent reads a /weather document.
func DecodeCurrent(r io.Reader) (RawCurrent, error) {
	var raw RawCurrent
	if err := decode(r, &raw); err != nil {
		return RawCurrent{}, &MalformedResponseError{Op: "current", Field: jsonField(err), Err: err}
	}
	return raw, nil
}

// DecodeForecast reads a /forecast document.
func DecodeForecast(r io.Reader) (RawForecast, error) {
	var raw RawForecast
	if err := decode(r, &raw); err != nil {
		return RawForecast{}, &MalformedResponseError{Op: "forecast", Field: jsonField(err), Err: err}
	}
	return raw, nil
}

func decode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

func jsonField(err error) string {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return te.Field
	}
	return ""
}
