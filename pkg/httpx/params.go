package httpx

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseIDList — разбор списка id вида "1,2,3" из query-параметра.
func ParseIDList(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty id list")
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, errors.New("invalid id: " + part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ActorID — id текущего оператора из заголовка X-Actor-ID.
// Аутентификация — забота вышестоящего слоя; сюда приходит уже
// проверенный идентификатор. Отсутствие заголовка = 0 (system).
func ActorID(c *gin.Context) int64 {
	actor, err := strconv.ParseInt(c.GetHeader("X-Actor-ID"), 10, 64)
	if err != nil {
		return 0
	}
	return actor
}
