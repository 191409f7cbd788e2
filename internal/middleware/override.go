package middleware

import "net/http"

// WithMethodOverride переписывает метод POST-запроса по параметру _method
// (query или тело формы): браузерные формы не умеют PATCH/DELETE,
// поэтому формы шлют POST /edit?_method=PATCH и т.п.
func WithMethodOverride(next http.Handler) http.Handler {
	allowed := map[string]bool{
		http.MethodPatch:  true,
		http.MethodDelete: true,
		http.MethodPut:    true,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			m := r.URL.Query().Get("_method")
			if m == "" {
				// PostFormValue парсит тело; для форм это безопасно и дёшево
				m = r.PostFormValue("_method")
			}
			if allowed[m] {
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}
