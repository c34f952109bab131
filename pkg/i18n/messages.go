// Package i18n resuelve los textos visibles para el usuario en inglés y tailandés.
// El idioma sale del header Accept-Language (o ?lang=) con fallback al APP_LANG configurado.
package i18n

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

// Key identificador estable de un mensaje.
type Key = string

const (
	StockInSaved          Key = "stock_in.saved"
	StockInFailed         Key = "stock_in.failed"
	StockInPermission     Key = "stock_in.permission"
	StockInMissingHeader  Key = "stock_in.missing_header"
	ItemsInvalid          Key = "items.invalid"
	TransferSaved         Key = "transfer.saved"
	TransferFailed        Key = "transfer.failed"
	TransferPermission    Key = "transfer.permission"
	TransferBranches      Key = "transfer.branches"
	SupplierSaved         Key = "supplier.saved"
	SupplierNameRequired  Key = "supplier.name_required"
	SupplierPermission    Key = "supplier.permission"
	SupplierFailed        Key = "supplier.failed"
	SupplierAddNewOption  Key = "supplier.add_new_option"
	SelectSupplier        Key = "select.supplier"
	SelectBranch          Key = "select.branch"
	SelectFromBranch      Key = "select.from_branch"
	SelectToBranch        Key = "select.to_branch"
	SelectIngredient      Key = "select.ingredient"
	ReportNoData          Key = "report.no_data"
	ReportInvalidRange    Key = "report.invalid_range"
	ReportLoadFailed      Key = "report.load_failed"
	ReportTitle           Key = "report.title"
	ReportColMenu         Key = "report.col.menu"
	ReportColQuantity     Key = "report.col.quantity"
	ReportColRevenue      Key = "report.col.revenue"
	ReportTotal           Key = "report.total"
	AlertsNone            Key = "alerts.none"
	AlertsLoadFailed      Key = "alerts.load_failed"
	BranchSalesFailed     Key = "branch_sales.load_failed"
	SchemaMismatch        Key = "schema.mismatch"
	ViewNotFound          Key = "view.not_found"
	AuthInvalidCredential Key = "auth.invalid_credentials"
	AuthInactive          Key = "auth.inactive"
	AuthForbidden         Key = "auth.forbidden"
	InvalidBody           Key = "request.invalid_body"
	ReferencesRefreshed   Key = "references.refreshed"
	DashboardRefreshed    Key = "dashboard.refreshed"
)

var (
	supported = []language.Tag{language.English, language.Thai}
	matcher   = language.NewMatcher(supported)
	cat       = catalog.NewBuilder(catalog.Fallback(language.English))
)

func init() {
	entries := []struct {
		key    Key
		en, th string
	}{
		{StockInSaved, "Stock In recorded successfully.", "บันทึกรับสินค้าเข้าเรียบร้อยแล้ว"},
		{StockInFailed, "Error saving stock in: %s", "บันทึกรับสินค้าเข้าไม่สำเร็จ: %s"},
		{StockInPermission, "Permission denied. Check RLS policies for stock_in / stock_in_item.", "ไม่มีสิทธิ์บันทึกข้อมูล ตรวจสอบ RLS policy ของ stock_in / stock_in_item"},
		{StockInMissingHeader, "Please select supplier and branch.", "โปรดเลือก supplier และสาขา"},
		{ItemsInvalid, "Please fill all item fields with valid values.", "โปรดกรอกข้อมูลรายการให้ครบถ้วนและถูกต้อง"},
		{TransferSaved, "Stock Transfer recorded successfully.", "บันทึกการโอนสินค้าเรียบร้อยแล้ว"},
		{TransferFailed, "Error saving stock transfer: %s", "บันทึกการโอนสินค้าไม่สำเร็จ: %s"},
		{TransferPermission, "Permission denied. Check RLS policies for stock_transfer / stock_transfer_item.", "ไม่มีสิทธิ์บันทึกข้อมูล ตรวจสอบ RLS policy ของ stock_transfer / stock_transfer_item"},
		{TransferBranches, "Please select different From and To branches.", "โปรดเลือกสาขาต้นทางและปลายทางที่ต่างกัน"},
		{SupplierSaved, "Supplier added.", "เพิ่ม supplier สำเร็จ"},
		{SupplierNameRequired, "Please enter a supplier name.", "โปรดระบุชื่อ supplier"},
		{SupplierPermission, "Permission denied. Cannot add supplier. Check RLS/policies.", "ไม่มีสิทธิ์เพิ่ม supplier ตรวจสอบ RLS/policies"},
		{SupplierFailed, "Error adding supplier: %s", "เกิดข้อผิดพลาด: %s"},
		{SupplierAddNewOption, "➕ Add new supplier...", "➕ เพิ่ม supplier ใหม่..."},
		{SelectSupplier, "-- select supplier --", "-- เลือก supplier --"},
		{SelectBranch, "-- select branch --", "-- เลือกสาขา --"},
		{SelectFromBranch, "-- from branch --", "-- สาขาต้นทาง --"},
		{SelectToBranch, "-- to branch --", "-- สาขาปลายทาง --"},
		{SelectIngredient, "-- select ingredient --", "-- เลือกวัตถุดิบ --"},
		{ReportNoData, "No sales yet", "ยังไม่มียอดขาย"},
		{ReportInvalidRange, "Invalid date range. Use YYYY-MM-DD.", "ช่วงวันที่ไม่ถูกต้อง ใช้รูปแบบ YYYY-MM-DD"},
		{ReportLoadFailed, "Error loading report data", "โหลดข้อมูลรายงานไม่สำเร็จ"},
		{ReportTitle, "Product mix report", "รายงานยอดขายตามเมนู"},
		{ReportColMenu, "Menu item", "เมนู"},
		{ReportColQuantity, "Quantity", "จำนวน"},
		{ReportColRevenue, "Revenue", "ยอดขาย"},
		{ReportTotal, "Total", "รวม"},
		{AlertsNone, "No low stock", "ไม่มีวัตถุดิบใกล้หมด"},
		{AlertsLoadFailed, "Error loading stock", "โหลดข้อมูลสต็อกไม่สำเร็จ"},
		{BranchSalesFailed, "Unable to load", "โหลดข้อมูลไม่สำเร็จ"},
		{SchemaMismatch, "Database schema mismatch: %s", "โครงสร้างฐานข้อมูลไม่ตรงกัน: %s"},
		{ViewNotFound, "Unknown page.", "ไม่พบหน้าที่ต้องการ"},
		{AuthInvalidCredential, "Invalid email or password.", "อีเมลหรือรหัสผ่านไม่ถูกต้อง"},
		{AuthInactive, "Account is inactive.", "บัญชีถูกระงับการใช้งาน"},
		{AuthForbidden, "You do not have access to this action.", "คุณไม่มีสิทธิ์ทำรายการนี้"},
		{InvalidBody, "Invalid request body.", "ข้อมูลที่ส่งมาไม่ถูกต้อง"},
		{ReferencesRefreshed, "Reference data reloaded.", "โหลดข้อมูลอ้างอิงใหม่แล้ว"},
		{DashboardRefreshed, "Dashboard refreshed.", "รีเฟรชแดชบอร์ดแล้ว"},
	}
	for _, e := range entries {
		_ = cat.SetString(language.English, e.key, e.en)
		_ = cat.SetString(language.Thai, e.key, e.th)
	}
}

// Match elige el idioma soportado más cercano a un header Accept-Language o a un código ("th", "en-US").
// Si no hay coincidencia útil devuelve fallback.
func Match(accept, fallback string) language.Tag {
	def := language.English
	if fallback == "th" {
		def = language.Thai
	}
	if accept == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}
	return supported[idx]
}

// Printer devuelve un printer para el idioma indicado con el catálogo del back-office.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// T traduce key al idioma tag, aplicando args al formato.
func T(tag language.Tag, key Key, args ...any) string {
	return Printer(tag).Sprintf(key, args...)
}

// Money formatea un importe con separador de miles y dos decimales (ej. "$1,234.50").
func Money(tag language.Tag, amount decimal.Decimal) string {
	p := Printer(tag)
	return "$" + p.Sprint(number.Decimal(amount.Round(2).InexactFloat64(), number.Scale(2)))
}
