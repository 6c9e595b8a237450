package dashboard

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/api"
)

// Tab is a dashboard section.
type Tab int

const (
	TabWallets Tab = iota
	TabBlockchain
	TabTransactions
	TabMining
	TabTrace
)

// Tabs lists the sections in display order.
var Tabs = []Tab{TabWallets, TabBlockchain, TabTransactions, TabMining, TabTrace}

func (t Tab) String() string {
	switch t {
	case TabWallets:
		return "Wallets"
	case TabBlockchain:
		return "Blockchain"
	case TabTransactions:
		return "Transactions"
	case TabMining:
		return "Mining"
	case TabTrace:
		return "Asset Trace"
	default:
		return "Unknown"
	}
}

// Level is the severity of a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notice is a transient message for the user.
type Notice struct {
	Level Level
	Text  string
}

func info(text string) Notice { return Notice{Level: LevelInfo, Text: text} }

// errorNotice describes err for the user. Backend messages are shown verbatim.
func errorNotice(action string, err error) Notice {
	var appErr *api.AppError
	if errors.As(err, &appErr) {
		return Notice{Level: LevelError, Text: appErr.Message}
	}
	return Notice{Level: LevelError, Text: fmt.Sprintf("%s failed: %v", action, err)}
}
