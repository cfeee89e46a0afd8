package store

// Snapshot is a point-in-time copy of the composed state.
type Snapshot struct {
	Auth        AuthState
	Catalog     CatalogState
	Transaction TransactionState
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Auth:        s.Auth.State(),
		Catalog:     s.Catalog.State(),
		Transaction: s.Transaction.State(),
	}
}

// Field names one value inside a Snapshot. The set is closed: Get resolves
// known fields only, so lookups stay typed instead of walking arbitrary
// paths through untyped maps.
type Field string

const (
	FieldUser            Field = "auth.user"
	FieldToken           Field = "auth.token"
	FieldIsAuthenticated Field = "auth.isAuthenticated"
	FieldAuthLoading     Field = "auth.isLoading"
	FieldAuthError       Field = "auth.error"
	FieldAuthMessage     Field = "auth.successMessage"

	FieldServices     Field = "catalog.services"
	FieldBanners      Field = "catalog.banners"
	FieldCatalogError Field = "catalog.error"

	FieldBalance            Field = "transaction.balance"
	FieldTransactions       Field = "transaction.records"
	FieldCurrentTransaction Field = "transaction.current"
	FieldTopUpResult        Field = "transaction.topUpResult"
	FieldOffset             Field = "transaction.offset"
	FieldLimit              Field = "transaction.limit"
	FieldHasMore            Field = "transaction.hasMore"
	FieldTransactionError   Field = "transaction.error"
	FieldTransactionMessage Field = "transaction.successMessage"
)

// Get resolves f against the snapshot. The second return is false for an
// unknown field.
func (s Snapshot) Get(f Field) (any, bool) {
	switch f {
	case FieldUser:
		return s.Auth.User, true
	case FieldToken:
		return s.Auth.Token, true
	case FieldIsAuthenticated:
		return s.Auth.IsAuthenticated, true
	case FieldAuthLoading:
		return s.Auth.IsLoading, true
	case FieldAuthError:
		return s.Auth.Error, true
	case FieldAuthMessage:
		return s.Auth.SuccessMessage, true
	case FieldServices:
		return s.Catalog.Services, true
	case FieldBanners:
		return s.Catalog.Banners, true
	case FieldCatalogError:
		return s.Catalog.Error, true
	case FieldBalance:
		return s.Transaction.Balance, true
	case FieldTransactions:
		return s.Transaction.Transactions, true
	case FieldCurrentTransaction:
		return s.Transaction.CurrentTransaction, true
	case FieldTopUpResult:
		return s.Transaction.TopUpResult, true
	case FieldOffset:
		return s.Transaction.Offset, true
	case FieldLimit:
		return s.Transaction.Limit, true
	case FieldHasMore:
		return s.Transaction.HasMore, true
	case FieldTransactionError:
		return s.Transaction.Error, true
	case FieldTransactionMessage:
		return s.Transaction.SuccessMessage, true
	}
	return nil, false
}
