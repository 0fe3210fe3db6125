package clients

import (
	"strings"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/store"
)

// filterByQuery поиск по email, имени или телефону без учета регистра
func filterByQuery(st store.State[domain.Client], query string) store.State[domain.Client] {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return st
	}

	items := make([]domain.Client, 0, len(st.Items))
	for _, c := range st.Items {
		if strings.Contains(strings.ToLower(c.Email), query) ||
			strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(c.Phone, query) {
			items = append(items, c)
		}
	}
	st.Items = items
	return st
}
