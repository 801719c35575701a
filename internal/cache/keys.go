package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

func DemographicsKey(companyID, window string) string {
	return fmt.Sprintf("workforce:demographics:%s:%s", companyID, window)
}

func FlowsKey(companyID, groupBy, window string) string {
	return fmt.Sprintf("workforce:flows:%s:%s:%s", companyID, groupBy, window)
}

func SearchKey(bodyHash string) string {
	return fmt.Sprintf("workforce:search:%s", bodyHash)
}

// HashBody produces a short stable hash of a serialized query body.
func HashBody(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:8])
}
