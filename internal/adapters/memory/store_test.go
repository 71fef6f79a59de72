package memory

import (
	"testing"

	"github.com/rahultadvi/chatflow/pkg/ports"
)

func TestStoreContract(t *testing.T) {
	ports.RunAutomationStoreContract(t, NewStore())
}
