package handler

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/hfhsieh/sparx-alpha/pkg/common/errcode"
	"github.com/hfhsieh/sparx-alpha/pkg/lamda"
	"github.com/hfhsieh/sparx-alpha/pkg/molecule"
	"github.com/hfhsieh/sparx-alpha/pkg/registry"
	"github.com/hfhsieh/sparx-alpha/pkg/utils/ginx"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   int
	}{
		{"unknown species", &registry.UnknownSpeciesError{Name: "sio"}, http.StatusNotFound, errcode.UnknownSpecies},
		{"index", &molecule.IndexError{What: "line", Index: 9, Len: 4}, http.StatusBadRequest, errcode.IndexOutOfRange},
		{"invalid param", &ginx.InvalidParamError{Name: "temp"}, http.StatusBadRequest, errcode.InvalidParam},
		{"no matching", &molecule.NoMatchingTransitionError{Partner: "o-H2"}, http.StatusNotFound, errcode.NoMatchingTransition},
		{"partner missing", &PartnerNotFoundError{Partner: "He"}, http.StatusNotFound, errcode.UnknownPartner},
		{
			"wrapped format",
			errors.Wrapf(lamda.NewFormatError(lamda.SectionLineTable, 17, "1 2 1", "expected 6 columns"), "load molecule co"),
			http.StatusInternalServerError, errcode.MalformedData,
		},
		{"unknown partner id", &molecule.UnknownPartnerError{ID: 9}, http.StatusInternalServerError, errcode.MalformedData},
		{"other", errors.New("boom"), http.StatusInternalServerError, errcode.Unknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, code := statusOf(c.err)
			assert.Equal(t, c.status, status)
			assert.Equal(t, c.code, code)
		})
	}
}
