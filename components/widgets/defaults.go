package widgets

// Container ids used by AdminPage.
const (
	ContainerSearch     = "global-search"
	ContainerPagination = "pagination"
	ContainerToasts     = "toast-container"
	ContainerTable      = "orders-table"
)

// DefaultSearchRecords is the seed data of the admin global search.
func DefaultSearchRecords() []SearchRecord {
	return []SearchRecord{
		{ID: "page-dashboard", Title: "Dashboard", Description: "Main dashboard page", Category: "pages", Icon: "bx-home"},
		{ID: "page-products", Title: "Products", Description: "Manage your products", Category: "pages", Icon: "bx-cube"},
		{ID: "page-orders", Title: "Orders", Description: "View and manage orders", Category: "pages", Icon: "bx-package"},
		{ID: "page-users", Title: "Users", Description: "Manage user accounts", Category: "pages", Icon: "bx-user"},
		{ID: "user-ahmed", Title: "Ahmed Mohamed", Description: "Customer from Cairo", Category: "users", Icon: "bx-user"},
		{ID: "user-fatima", Title: "Fatima Ali", Description: "Customer from Dubai", Category: "users", Icon: "bx-user"},
		{ID: "product-iphone-14", Title: "iPhone 14", Description: "Latest iPhone model", Category: "products", Icon: "bx-mobile"},
		{ID: "product-macbook-pro", Title: "MacBook Pro", Description: "Professional laptop", Category: "products", Icon: "bx-laptop"},
		{ID: "order-1234", Title: "Order #1234", Description: "Recent order from Ahmed", Category: "orders", Icon: "bx-receipt"},
		{ID: "order-1235", Title: "Order #1235", Description: "Pending order from Fatima", Category: "orders", Icon: "bx-receipt"},
	}
}

// DefaultOrderColumns are the headers of the recent orders table.
func DefaultOrderColumns() []Column {
	return []Column{
		{Label: "Name"},
		{Label: "Price"},
		{Label: "Payment"},
		{Label: "Status", NoSort: true},
	}
}

// DefaultOrderRows seeds the recent orders table.
func DefaultOrderRows() [][]string {
	return [][]string{
		{"iPhone 14", "$1200", "Paid", "Delivered"},
		{"MacBook Pro", "$2400", "Due", "Pending"},
		{"AirPods Pro", "$250", "Paid", "Return"},
		{"Apple Watch", "$620", "Due", "In Progress"},
		{"iPad Air", "$750", "Paid", "Delivered"},
	}
}

// DefaultTabs are the tabs of the components page.
func DefaultTabs() []Tab {
	return []Tab{
		{ID: "overview", Label: "Overview"},
		{ID: "analytics", Label: "Analytics"},
		{ID: "reports", Label: "Reports"},
	}
}

// DefaultDropdownItems are the entries of the components page dropdown.
func DefaultDropdownItems() []DropdownItem {
	return []DropdownItem{
		{ID: "today", Label: "Today"},
		{ID: "week", Label: "This Week"},
		{ID: "month", Label: "This Month"},
	}
}
