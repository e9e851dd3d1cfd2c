package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex inv_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateShortIDWithPrefix returns a short human-facing code with a
// prefix, capped at 12 characters, e.g. `EMP-X2A8Q`.
func GenerateShortIDWithPrefix(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")

	availableLen := 12 - len(prefix)
	if availableLen <= 0 {
		return ""
	}

	if len(id) > availableLen {
		id = id[:availableLen]
	}

	return strings.ToUpper(fmt.Sprintf("%s%s", prefix, id))
}

const (
	UUID_PREFIX_CLIENT          = "client"
	UUID_PREFIX_PROJECT         = "proj"
	UUID_PREFIX_INVOICE         = "inv"
	UUID_PREFIX_ESTIMATE        = "est"
	UUID_PREFIX_RECEIPT         = "rcpt"
	UUID_PREFIX_PAYMENT         = "pay"
	UUID_PREFIX_EXPENSE         = "exp"
	UUID_PREFIX_PRODUCT         = "prod"
	UUID_PREFIX_SERVICE         = "svc"
	UUID_PREFIX_OPPORTUNITY     = "opp"
	UUID_PREFIX_EMPLOYEE        = "empl"
	UUID_PREFIX_DEPARTMENT      = "dept"
	UUID_PREFIX_ATTENDANCE      = "att"
	UUID_PREFIX_PAYROLL         = "payrl"
	UUID_PREFIX_LEAVE           = "leave"
	UUID_PREFIX_USER            = "user"
	UUID_PREFIX_NOTIFICATION    = "notif"
	UUID_PREFIX_SETTING         = "setting"
	UUID_PREFIX_NUMBER_FORMAT   = "dnf"
	UUID_PREFIX_ACTIVITY        = "act"
	UUID_PREFIX_ROLE            = "role"
	UUID_PREFIX_PERMISSION      = "perm"
	UUID_PREFIX_ROLE_PERMISSION = "roleperm"

	SHORT_ID_PREFIX_EMPLOYEE = "EMP-"
)
