package memory

import (
	"github.com/nexinvo/gstledger/internal/service/account"
	"github.com/nexinvo/gstledger/internal/service/client"
	"github.com/nexinvo/gstledger/internal/service/payment"
	"github.com/nexinvo/gstledger/internal/service/reminder"
	"github.com/nexinvo/gstledger/internal/service/voucher"
)

// Compile-time checks that Store satisfies every repository interface.
var (
	_ account.Repo    = (*Store)(nil)
	_ account.Writer  = (*Store)(nil)
	_ voucher.Repo    = (*Store)(nil)
	_ voucher.Writer  = (*Store)(nil)
	_ client.Repo     = (*Store)(nil)
	_ client.Writer   = (*Store)(nil)
	_ payment.Repo    = (*Store)(nil)
	_ payment.Writer  = (*Store)(nil)
	_ reminder.Repo   = (*Store)(nil)
	_ reminder.Writer = (*Store)(nil)
)
