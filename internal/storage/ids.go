package storage

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID builds record ids in the form
// "{prefix}-{base36 unix-millis}-{6 random base36 chars}". Every derived
// record gets its id here so the stores never have to generate keys.
func GenerateID(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('-')
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	b.WriteByte('-')
	for i := 0; i < 6; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return b.String()
}
