package document

// Normalize heals a document read from storage so that every section exists
// with safe defaults. It is pure and idempotent: normalizing an already
// normalized document changes nothing. Missing sections can appear when the
// persisted file predates a schema addition or was edited by hand.
func Normalize(d *Document) {
	if d.Settings == (Settings{}) {
		d.Settings = defaultSettings()
	}

	if d.User.Name == "" && d.User.Role == "" {
		hash := d.User.PasswordHash
		changedAt := d.User.PasswordChangedAt
		d.User = defaultUser()
		d.User.PasswordHash = hash
		d.User.PasswordChangedAt = changedAt
	}

	if d.Products == nil {
		d.Products = []Product{}
	}
	for i := range d.Products {
		if d.Products[i].Images == nil {
			d.Products[i].Images = []string{}
		}
	}

	if d.Orders == nil {
		d.Orders = []Order{}
	}
	for i := range d.Orders {
		if d.Orders[i].Items == nil {
			d.Orders[i].Items = []OrderItem{}
		}
		if d.Orders[i].Status == "" {
			d.Orders[i].Status = OrderStatusPending
		}
	}

	if d.Analytics.Monthly == nil {
		d.Analytics.Monthly = []MonthlyStat{}
	}

	if d.NextProductID < 1 {
		d.NextProductID = 1
	}
	for i := range d.Products {
		if d.Products[i].ID >= d.NextProductID {
			d.NextProductID = d.Products[i].ID + 1
		}
	}
}
