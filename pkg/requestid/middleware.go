package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/bounded"
)

const Header = "X-Request-ID"

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := Parse(r.Header.Get(Header))
		if err != nil {
			id = bounded.MustNew[Limits](uuid.NewString())
		}
		w.Header().Set(Header, id.String())
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}
