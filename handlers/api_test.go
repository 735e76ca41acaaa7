package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"freshstalls-api/config"
	"freshstalls-api/models"
	"freshstalls-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("ORDER_WINDOW_OPEN", "0")
	t.Setenv("ORDER_WINDOW_CLOSE", "24")
	config.InitDB()
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerVendor(t *testing.T, r *gin.Engine, email string) (token string, vendorID uint) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/auth/register/vendor", "", gin.H{
		"name":       "Ravi Kumar",
		"email":      email,
		"password":   "secret123",
		"shop_name":  "Ravi's Chaat Corner",
		"gst_number": "22AAAAA0000A1Z5",
		"location":   "MG Road",
		"category":   "Chaat",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	token = body["token"].(string)
	vendorID = uint(body["vendor"].(map[string]interface{})["id"].(float64))
	return token, vendorID
}

func registerSupplier(t *testing.T, r *gin.Engine, email string) (token string, supplierID uint) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/auth/register/supplier", "", gin.H{
		"email":         email,
		"password":      "secret123",
		"supplier_name": "Fresh Farms Co",
		"owner_name":    "Anita Shah",
		"gst_number":    "07BZAHM6385P6Z2",
		"category":      "Vegetables",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	token = body["token"].(string)
	supplierID = uint(body["supplier"].(map[string]interface{})["id"].(float64))
	return token, supplierID
}

func addProduct(t *testing.T, r *gin.Engine, supplierToken, name string, price float64) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/supplier/products", supplierToken, gin.H{
		"product_name":   name,
		"unit":           "kg",
		"price_per_unit": price,
		"category":       "Vegetables",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	return uint(body["product"].(map[string]interface{})["id"].(float64))
}

func placeOrder(t *testing.T, r *gin.Engine, vendorToken string, supplierID, productID uint, qty, price float64) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/vendor/orders", vendorToken, gin.H{
		"supplier_id": supplierID,
		"items": []gin.H{
			{"product_id": productID, "quantity": qty, "unit_price": price},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	return uint(body["order"].(map[string]interface{})["id"].(float64))
}

// ── Registration & login ─────────────────────────────────────────────────────

func TestVendorRegistrationRejectsBadGST(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register/vendor", "", gin.H{
		"name":       "Ravi",
		"email":      "ravi@example.com",
		"password":   "secret123",
		"shop_name":  "Chaat Corner",
		"gst_number": "22AAAAA0000A1Z", // 14 chars
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", "ravi@example.com").Count(&count)
	assert.Zero(t, count, "no user row should exist after a failed registration")
}

func TestDuplicateEmailRollsBackProfileRow(t *testing.T) {
	r := setupTest(t)
	registerVendor(t, r, "shared@example.com")

	w := doJSON(r, http.MethodPost, "/api/auth/register/supplier", "", gin.H{
		"email":         "shared@example.com",
		"password":      "secret123",
		"supplier_name": "Dup Farms",
		"owner_name":    "Dup Owner",
		"gst_number":    "07BZAHM6385P6Z2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// the failed transaction must not leave a supplier profile behind
	var suppliers int64
	config.DB.Model(&models.Supplier{}).Count(&suppliers)
	assert.Zero(t, suppliers)
}

func TestLoginIsScopedByUserType(t *testing.T) {
	r := setupTest(t)
	registerVendor(t, r, "ravi@example.com")

	// right credentials, wrong portal
	w := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":     "ravi@example.com",
		"password":  "secret123",
		"user_type": "supplier",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":     "ravi@example.com",
		"password":  "secret123",
		"user_type": "vendor",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":     "ravi@example.com",
		"password":  "wrongpass",
		"user_type": "vendor",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// ── Reviews ──────────────────────────────────────────────────────────────────

func TestReviewRecomputesVendorAggregates(t *testing.T) {
	r := setupTest(t)
	_, vendorID := registerVendor(t, r, "ravi@example.com")
	path := fmt.Sprintf("/api/stalls/%d/reviews", vendorID)

	w := doJSON(r, http.MethodPost, path, "", gin.H{
		"customer_name": "Asha", "rating": 4, "review_text": "Great chaat",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doJSON(r, http.MethodPost, path, "", gin.H{
		"customer_name": "Vikram", "rating": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var vendor models.Vendor
	require.NoError(t, config.DB.First(&vendor, vendorID).Error)
	assert.InDelta(t, 4.5, vendor.Rating, 0.001)
	assert.Equal(t, 2, vendor.ReviewCount)

	w = doJSON(r, http.MethodPost, path, "", gin.H{
		"customer_name": "Meera", "rating": 6, // out of range
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/stalls/9999/reviews", "", gin.H{
		"customer_name": "Ghost", "rating": 3,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ── Orders ───────────────────────────────────────────────────────────────────

func TestStructuredOrderStoresCartAndItems(t *testing.T) {
	r := setupTest(t)
	vendorToken, _ := registerVendor(t, r, "ravi@example.com")
	supplierToken, supplierID := registerSupplier(t, r, "anita@example.com")
	productID := addProduct(t, r, supplierToken, "Potatoes", 50)

	orderID := placeOrder(t, r, vendorToken, supplierID, productID, 2, 50)

	var order models.VendorOrder
	require.NoError(t, config.DB.Preload("OrderItems").First(&order, orderID).Error)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, models.OrderStructured, order.OrderType)

	var cart []models.CartLine
	require.NoError(t, json.Unmarshal([]byte(order.Items), &cart))
	require.Len(t, cart, 1)
	assert.Equal(t, productID, cart[0].ProductID)
	assert.Equal(t, "Potatoes", cart[0].ProductName)
	assert.Equal(t, 2.0, cart[0].Quantity)
	assert.Equal(t, 50.0, cart[0].UnitPrice)

	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 100.0, order.OrderItems[0].TotalPrice)
}

func TestOrderIgnoresClientUnitPrice(t *testing.T) {
	r := setupTest(t)
	vendorToken, _ := registerVendor(t, r, "ravi@example.com")
	supplierToken, supplierID := registerSupplier(t, r, "anita@example.com")
	productID := addProduct(t, r, supplierToken, "Paneer", 320)

	// client claims the product costs 1
	orderID := placeOrder(t, r, vendorToken, supplierID, productID, 3, 1)

	var order models.VendorOrder
	require.NoError(t, config.DB.Preload("OrderItems").First(&order, orderID).Error)

	var cart []models.CartLine
	require.NoError(t, json.Unmarshal([]byte(order.Items), &cart))
	require.Len(t, cart, 1)
	assert.Equal(t, 320.0, cart[0].UnitPrice, "stored cart should carry the catalogue price")

	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 320.0, order.OrderItems[0].UnitPrice)
	assert.Equal(t, 960.0, order.OrderItems[0].TotalPrice)
}

func TestOrderRejectsForeignProduct(t *testing.T) {
	r := setupTest(t)
	vendorToken, _ := registerVendor(t, r, "ravi@example.com")
	supplierToken, supplierID := registerSupplier(t, r, "anita@example.com")
	otherToken, _ := registerSupplier(t, r, "other@example.com")
	foreignProduct := addProduct(t, r, otherToken, "Onions", 30)
	_ = supplierToken

	w := doJSON(r, http.MethodPost, "/api/vendor/orders", vendorToken, gin.H{
		"supplier_id": supplierID,
		"items": []gin.H{
			{"product_id": foreignProduct, "quantity": 1, "unit_price": 30},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderStatusIsMonotonic(t *testing.T) {
	r := setupTest(t)
	vendorToken, _ := registerVendor(t, r, "ravi@example.com")
	supplierToken, supplierID := registerSupplier(t, r, "anita@example.com")
	productID := addProduct(t, r, supplierToken, "Potatoes", 50)

	orderID := placeOrder(t, r, vendorToken, supplierID, productID, 1, 50)
	respondPath := fmt.Sprintf("/api/supplier/orders/%d/respond", orderID)

	// accept requires a delivery date
	w := doJSON(r, http.MethodPut, respondPath, supplierToken, gin.H{"status": "accepted"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, respondPath, supplierToken, gin.H{
		"status": "accepted", "delivery_date": "2024-06-15",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// accepted orders cannot be rejected
	w = doJSON(r, http.MethodPut, respondPath, supplierToken, gin.H{"status": "rejected"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(r, http.MethodPut, respondPath, supplierToken, gin.H{"status": "delivered"})
	require.Equal(t, http.StatusOK, w.Code)

	// delivered is terminal
	w = doJSON(r, http.MethodPut, respondPath, supplierToken, gin.H{
		"status": "accepted", "delivery_date": "2024-06-16",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var order models.VendorOrder
	require.NoError(t, config.DB.First(&order, orderID).Error)
	assert.Equal(t, models.StatusDelivered, order.Status)
	assert.NotNil(t, order.ResponseDate)
	assert.NotNil(t, order.DeliveryDate)
}

func TestRejectedOrderStaysRejected(t *testing.T) {
	r := setupTest(t)
	vendorToken, _ := registerVendor(t, r, "ravi@example.com")
	supplierToken, supplierID := registerSupplier(t, r, "anita@example.com")
	productID := addProduct(t, r, supplierToken, "Potatoes", 50)

	orderID := placeOrder(t, r, vendorToken, supplierID, productID, 1, 50)
	respondPath := fmt.Sprintf("/api/supplier/orders/%d/respond", orderID)

	w := doJSON(r, http.MethodPut, respondPath, supplierToken, gin.H{"status": "rejected"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPut, respondPath, supplierToken, gin.H{
		"status": "accepted", "delivery_date": "2024-06-15",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSupplierCannotRespondToForeignOrder(t *testing.T) {
	r := setupTest(t)
	vendorToken, _ := registerVendor(t, r, "ravi@example.com")
	supplierToken, supplierID := registerSupplier(t, r, "anita@example.com")
	otherToken, _ := registerSupplier(t, r, "other@example.com")
	productID := addProduct(t, r, supplierToken, "Potatoes", 50)

	orderID := placeOrder(t, r, vendorToken, supplierID, productID, 1, 50)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/supplier/orders/%d/respond", orderID),
		otherToken, gin.H{"status": "rejected"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrderingWindowEnforced(t *testing.T) {
	r := setupTest(t)
	vendorToken, _ := registerVendor(t, r, "ravi@example.com")
	supplierToken, supplierID := registerSupplier(t, r, "anita@example.com")
	_ = addProduct(t, r, supplierToken, "Potatoes", 50)

	// shrink the window to nothing
	t.Setenv("ORDER_WINDOW_OPEN", "0")
	t.Setenv("ORDER_WINDOW_CLOSE", "0")

	w := doJSON(r, http.MethodPost, "/api/vendor/orders/text", vendorToken, gin.H{
		"supplier_id": supplierID,
		"items":       "5kg potatoes, 2kg onions",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// ── Ownership scoping ────────────────────────────────────────────────────────

func TestMenuDeleteIsVendorScoped(t *testing.T) {
	r := setupTest(t)
	ownerToken, _ := registerVendor(t, r, "owner@example.com")
	intruderToken, _ := registerVendor(t, r, "intruder@example.com")

	w := doJSON(r, http.MethodPost, "/api/vendor/menu", ownerToken, gin.H{
		"item_name": "Pani Puri", "price": 40.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := uint(decode(t, w)["item"].(map[string]interface{})["id"].(float64))

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/vendor/menu/%d", itemID), intruderToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	config.DB.Model(&models.MenuItem{}).Where("id = ?", itemID).Count(&count)
	assert.Equal(t, int64(1), count, "another vendor's delete must affect zero rows")

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/vendor/menu/%d", itemID), ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInventoryUpdateIsVendorScoped(t *testing.T) {
	r := setupTest(t)
	ownerToken, _ := registerVendor(t, r, "owner@example.com")
	intruderToken, _ := registerVendor(t, r, "intruder@example.com")

	w := doJSON(r, http.MethodPost, "/api/vendor/inventory", ownerToken, gin.H{
		"item_name": "Potatoes", "quantity": 10.0, "unit": "kg",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	itemID := uint(decode(t, w)["item"].(map[string]interface{})["id"].(float64))

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/vendor/inventory/%d", itemID), intruderToken, gin.H{
		"quantity": 0.0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var item models.InventoryItem
	require.NoError(t, config.DB.First(&item, itemID).Error)
	assert.Equal(t, 10.0, item.Quantity)
}

// ── Ingredient sourcing ──────────────────────────────────────────────────────

func TestIngredientWriteRequiresAcceptedOrder(t *testing.T) {
	r := setupTest(t)
	vendorToken, vendorID := registerVendor(t, r, "ravi@example.com")
	supplierToken, supplierID := registerSupplier(t, r, "anita@example.com")
	productID := addProduct(t, r, supplierToken, "Potatoes", 50)

	payload := gin.H{
		"vendor_id":       vendorID,
		"ingredient_name": "Fresh Vegetables",
		"status":          "low_stock",
	}

	// no relationship yet
	w := doJSON(r, http.MethodPut, "/api/supplier/ingredients", supplierToken, payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// a pending order is not enough
	orderID := placeOrder(t, r, vendorToken, supplierID, productID, 1, 50)
	w = doJSON(r, http.MethodPut, "/api/supplier/ingredients", supplierToken, payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// accepting the order grants write access
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/supplier/orders/%d/respond", orderID),
		supplierToken, gin.H{"status": "accepted", "delivery_date": "2024-06-15"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPut, "/api/supplier/ingredients", supplierToken, payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var row models.IngredientSourcing
	require.NoError(t, config.DB.Where("vendor_id = ? AND supplier_id = ?", vendorID, supplierID).
		First(&row).Error)
	assert.Equal(t, models.StockLow, row.Status)
	assert.True(t, row.IsVerified)

	// a second write updates the same row instead of duplicating it
	payload["status"] = "out_of_stock"
	w = doJSON(r, http.MethodPut, "/api/supplier/ingredients", supplierToken, payload)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	config.DB.Model(&models.IngredientSourcing{}).
		Where("vendor_id = ? AND supplier_id = ?", vendorID, supplierID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestVendorCannotWriteIngredientSourcing(t *testing.T) {
	r := setupTest(t)
	vendorToken, vendorID := registerVendor(t, r, "ravi@example.com")

	w := doJSON(r, http.MethodPut, "/api/supplier/ingredients", vendorToken, gin.H{
		"vendor_id":       vendorID,
		"ingredient_name": "Fresh Vegetables",
		"status":          "in_stock",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestIngredientListOrderedByStockPriority(t *testing.T) {
	r := setupTest(t)
	vendorToken, vendorID := registerVendor(t, r, "ravi@example.com")
	supplierToken, supplierID := registerSupplier(t, r, "anita@example.com")
	productID := addProduct(t, r, supplierToken, "Potatoes", 50)

	orderID := placeOrder(t, r, vendorToken, supplierID, productID, 1, 50)
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/supplier/orders/%d/respond", orderID),
		supplierToken, gin.H{"status": "accepted", "delivery_date": "2024-06-15"})
	require.Equal(t, http.StatusOK, w.Code)

	for name, status := range map[string]string{
		"Paneer":   "in_stock",
		"Tomatoes": "out_of_stock",
		"Onions":   "low_stock",
	} {
		w = doJSON(r, http.MethodPut, "/api/supplier/ingredients", supplierToken, gin.H{
			"vendor_id":       vendorID,
			"ingredient_name": name,
			"status":          status,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/vendor/ingredients", vendorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ingredients []models.IngredientSourcing `json:"ingredients"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Ingredients, 3)
	assert.Equal(t, models.StockOut, resp.Ingredients[0].Status)
	assert.Equal(t, models.StockLow, resp.Ingredients[1].Status)
	assert.Equal(t, models.StockIn, resp.Ingredients[2].Status)
}

// ── Templates ────────────────────────────────────────────────────────────────

func TestTemplateItemsAreOwnershipChecked(t *testing.T) {
	r := setupTest(t)
	ownerToken, _ := registerVendor(t, r, "owner@example.com")
	intruderToken, _ := registerVendor(t, r, "intruder@example.com")
	supplierToken, supplierID := registerSupplier(t, r, "anita@example.com")
	productID := addProduct(t, r, supplierToken, "Potatoes", 50)

	w := doJSON(r, http.MethodPost, "/api/vendor/templates", ownerToken, gin.H{
		"supplier_id":   supplierID,
		"template_name": "Monday staples",
		"items": []gin.H{
			{"product_id": productID, "quantity": 3, "notes": "small ones"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	templateID := uint(decode(t, w)["template"].(map[string]interface{})["id"].(float64))
	itemsPath := fmt.Sprintf("/api/vendor/templates/%d/items", templateID)

	w = doJSON(r, http.MethodGet, itemsPath, intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, itemsPath, ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cart []models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart, 1)
	assert.Equal(t, productID, cart[0].ProductID)
	assert.Equal(t, "Potatoes", cart[0].ProductName)
	assert.Equal(t, 50.0, cart[0].UnitPrice)
	assert.Equal(t, 3.0, cart[0].Quantity)
}

func TestTemplateRejectsForeignProducts(t *testing.T) {
	r := setupTest(t)
	vendorToken, _ := registerVendor(t, r, "ravi@example.com")
	_, supplierID := registerSupplier(t, r, "anita@example.com")
	otherToken, _ := registerSupplier(t, r, "other@example.com")
	foreignProduct := addProduct(t, r, otherToken, "Onions", 30)

	w := doJSON(r, http.MethodPost, "/api/vendor/templates", vendorToken, gin.H{
		"supplier_id":   supplierID,
		"template_name": "Bad template",
		"items": []gin.H{
			{"product_id": foreignProduct, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ── Public endpoints ─────────────────────────────────────────────────────────

func TestStallListingFiltersByStatusAndSearch(t *testing.T) {
	r := setupTest(t)
	openToken, _ := registerVendor(t, r, "open@example.com")
	closedToken, _ := registerVendor(t, r, "closed@example.com")
	_ = openToken

	w := doJSON(r, http.MethodPut, "/api/vendor/shop-status", closedToken, gin.H{"shop_status": "closed"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/stalls", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["count"], "closed stalls are hidden from the public list")
}

func TestShopDetailsEnvelope(t *testing.T) {
	r := setupTest(t)
	_, vendorID := registerVendor(t, r, "ravi@example.com")

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/stalls/%d/details", vendorID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])

	w = doJSON(r, http.MethodGet, "/api/stalls/9999/details", "", nil)
	body = decode(t, w)
	assert.Equal(t, false, body["success"])
}

func TestSupplierProductsListsOnlyAvailable(t *testing.T) {
	r := setupTest(t)
	vendorToken, _ := registerVendor(t, r, "ravi@example.com")
	supplierToken, supplierID := registerSupplier(t, r, "anita@example.com")
	_ = addProduct(t, r, supplierToken, "Potatoes", 50)
	hiddenID := addProduct(t, r, supplierToken, "Truffles", 5000)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/supplier/products/%d", hiddenID), supplierToken, gin.H{
		"product_name":   "Truffles",
		"unit":           "kg",
		"price_per_unit": 5000.0,
		"is_available":   false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/vendor/suppliers/%d/products", supplierID), vendorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.SupplierProduct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Potatoes", products[0].ProductName)
}

// ── Shop hours ───────────────────────────────────────────────────────────────

func TestShopHoursRoundTrip(t *testing.T) {
	r := setupTest(t)
	vendorToken, vendorID := registerVendor(t, r, "ravi@example.com")

	w := doJSON(r, http.MethodPut, "/api/vendor/shop-hours", vendorToken, gin.H{
		"hours": []gin.H{
			{"day_of_week": "Sunday", "is_closed": true},
			{"day_of_week": "Monday", "open_time": "08:00", "close_time": "20:00"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/stalls/%d", vendorID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ShopHours []models.ShopHour `json:"shop_hours"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.ShopHours, 2)
	// Monday-first ordering
	assert.Equal(t, "Monday", resp.ShopHours[0].DayOfWeek)
	assert.Equal(t, "Sunday", resp.ShopHours[1].DayOfWeek)

	// missing open/close on a non-closed day is rejected
	w = doJSON(r, http.MethodPut, "/api/vendor/shop-hours", vendorToken, gin.H{
		"hours": []gin.H{
			{"day_of_week": "Tuesday"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShopHoursRejectMalformedTimes(t *testing.T) {
	r := setupTest(t)
	vendorToken, _ := registerVendor(t, r, "ravi@example.com")

	// unpadded hours would sort wrongly against "HH:MM" strings
	for _, bad := range []gin.H{
		{"day_of_week": "Monday", "open_time": "9:00", "close_time": "20:00"},
		{"day_of_week": "Monday", "open_time": "08:00", "close_time": "25:99"},
		{"day_of_week": "Monday", "open_time": "soon", "close_time": "later"},
	} {
		w := doJSON(r, http.MethodPut, "/api/vendor/shop-hours", vendorToken, gin.H{
			"hours": []gin.H{bad},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "expected %v to be rejected", bad)
	}

	var count int64
	config.DB.Model(&models.ShopHour{}).Count(&count)
	assert.Zero(t, count)
}

// ── Profile ──────────────────────────────────────────────────────────────────

func TestProfileUpdateRevalidatesGST(t *testing.T) {
	r := setupTest(t)
	vendorToken, vendorID := registerVendor(t, r, "ravi@example.com")

	w := doJSON(r, http.MethodPut, "/api/vendor/profile", vendorToken, gin.H{
		"name":       "Ravi Kumar",
		"email":      "ravi@example.com",
		"shop_name":  "Renamed Corner",
		"gst_number": "bad-gst",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/api/vendor/profile", vendorToken, gin.H{
		"name":       "Ravi Kumar",
		"email":      "ravi@example.com",
		"shop_name":  "Renamed Corner",
		"gst_number": "29ABCDE1234F2G8",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var vendor models.Vendor
	require.NoError(t, config.DB.First(&vendor, vendorID).Error)
	assert.Equal(t, "Renamed Corner", vendor.ShopName)
	assert.Equal(t, "29ABCDE1234F2G8", vendor.GSTNumber)
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	r := setupTest(t)
	vendorToken, _ := registerVendor(t, r, "ravi@example.com")

	w := doJSON(r, http.MethodPut, "/api/profile/password", vendorToken, gin.H{
		"current_password": "wrongpass",
		"new_password":     "newsecret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPut, "/api/profile/password", vendorToken, gin.H{
		"current_password": "secret123",
		"new_password":     "newsecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// old password no longer works
	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ravi@example.com", "password": "secret123", "user_type": "vendor",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ravi@example.com", "password": "newsecret", "user_type": "vendor",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
