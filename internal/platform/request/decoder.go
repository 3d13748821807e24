// Package request decodifica cuerpos JSON o form-urlencoded hacia DTOs,
// para aceptar los dos content types que admite la API.
package request

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

var ErrInvalidBody = errors.New("invalid request body")

// Decode llena dst (puntero a struct con tags json) desde el body.
// Los DTOs usan string para fechas; el parseo fino queda en el handler.
func Decode(r *http.Request, dst any) error {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		return decodeForm(r, dst)
	}

	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ErrInvalidBody
	}
	return nil
}

// decodeForm mapea campos del form a los campos del struct usando el tag
// json, con el tipo que declara el destino.
func decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return ErrInvalidBody
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return ErrInvalidBody
	}

	sv := v.Elem()
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		tag := strings.Split(st.Field(i).Tag.Get("json"), ",")[0]
		if tag == "" || tag == "-" {
			continue
		}
		if !r.PostForm.Has(tag) {
			continue
		}
		if err := setField(sv.Field(i), r.PostForm.Get(tag)); err != nil {
			return ErrInvalidBody
		}
	}
	return nil
}

func setField(f reflect.Value, raw string) error {
	if f.Kind() == reflect.Pointer {
		p := reflect.New(f.Type().Elem())
		if err := setField(p.Elem(), raw); err != nil {
			return err
		}
		f.Set(p)
		return nil
	}

	switch f.Kind() {
	case reflect.String:
		f.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		f.SetInt(n)
	default:
		return errors.New("unsupported form field type")
	}
	return nil
}
