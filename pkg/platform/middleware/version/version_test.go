package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	id "emissions/pkg/domain"
	"emissions/pkg/requestcontext"
)

func TestExtractVersion(t *testing.T) {
	var seen id.APIVersion
	h := ExtractVersion(id.APIVersionV1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.APIVersion(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/bounds", nil))

	assert.Equal(t, id.APIVersionV1, seen)
	assert.Equal(t, "v1", rr.Header().Get(Header))
}
