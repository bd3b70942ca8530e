package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler       commands.CheckoutCommandHandler
	changeStatusHandler   commands.ChangeOrderStatusCommandHandler
	overrideStatusHandler commands.OverrideOrderStatusCommandHandler
	assignHandler         commands.AssignOrderCommandHandler

	// Query handlers
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getOrderByIDHandler      queries.GetOrderByIDQueryHandler

	validate *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	overrideStatusHandler commands.OverrideOrderStatusCommandHandler,
	assignHandler commands.AssignOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:          checkoutHandler,
		changeStatusHandler:      changeStatusHandler,
		overrideStatusHandler:    overrideStatusHandler,
		assignHandler:            assignHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		validate:                 validator.New(),
	}
}

// Checkout handles POST /api/v1/orders - runs the checkout and creates an order.
func (s *Server) Checkout(ctx echo.Context, params servers.CheckoutParams) error {
	var request servers.CheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validateCheckoutRequest(request); err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	cmd, err := buildCheckoutCommand(request, params.IdempotencyKey)
	if err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	created, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrders handles GET /api/v1/orders - retrieves all order summaries.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	summaries, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

// GetCustomerOrders handles GET /api/v1/orders/user/{email} - retrieves one customer's orders.
func (s *Server) GetCustomerOrders(ctx echo.Context, email string) error {
	query, err := queries.NewGetCustomerOrdersQuery(email)
	if err != nil {
		return badRequest(ctx, "Invalid email: "+err.Error())
	}

	summaries, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

// GetOrderById handles GET /api/v1/orders/{orderId} - retrieves full order detail.
func (s *Server) GetOrderById(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	detail, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detailToResponse(detail))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status - transitions the order.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, status, version, err := s.bindStatusRequest(ctx, orderId)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, version)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// OverrideOrderStatus handles POST /api/v1/orders/{orderId}/status/override - admin override.
func (s *Server) OverrideOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, status, version, err := s.bindStatusRequest(ctx, orderId)
	if err != nil {
		return badRequest(ctx, "Invalid status override: "+err.Error())
	}

	cmd, err := commands.NewOverrideOrderStatusCommand(orderID, status, version)
	if err != nil {
		return badRequest(ctx, "Invalid status override: "+err.Error())
	}

	updated, err := s.overrideStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// AssignCourier handles PUT /api/v1/orders/{orderId}/assign - binds a courier to the order.
func (s *Server) AssignCourier(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.AssignRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	courierID, err := kernel.UUIDFromBytes(request.CourierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, courierID, request.Version)
	if err != nil {
		return badRequest(ctx, "Invalid assignment: "+err.Error())
	}

	updated, err := s.assignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// validateCheckoutRequest runs the wire-level checks that do not need domain
// knowledge: required fields present, email well-formed, quantities positive.
func (s *Server) validateCheckoutRequest(request servers.CheckoutRequest) error {
	if err := s.validate.Var(request.Customer.Email, "required,email"); err != nil {
		return err
	}
	if err := s.validate.Var(request.Items, "required,min=1"); err != nil {
		return err
	}
	for _, item := range request.Items {
		if err := s.validate.Var(item.Quantity, "gte=1"); err != nil {
			return err
		}
	}
	return s.validate.Var(string(request.ShippingMethod), "oneof=standard express")
}

// bindStatusRequest extracts the common parts of the two status endpoints.
func (s *Server) bindStatusRequest(
	ctx echo.Context,
	orderId openapi_types.UUID,
) (kernel.UUID, order.Status, int, error) {
	var request servers.StatusUpdateRequest
	if err := ctx.Bind(&request); err != nil {
		return kernel.UUID{}, order.Unknown, 0, err
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return kernel.UUID{}, order.Unknown, 0, err
	}

	status, err := order.StatusFromString(string(request.Status))
	if err != nil {
		return kernel.UUID{}, order.Unknown, 0, err
	}

	return orderID, status, request.Version, nil
}

// buildCheckoutCommand maps the wire request into the checkout command.
func buildCheckoutCommand(request servers.CheckoutRequest, idempotencyKey *string) (commands.CheckoutCommand, error) {
	address, err := order.NewAddress(
		request.Customer.Address.Street,
		request.Customer.Address.City,
		request.Customer.Address.State,
		request.Customer.Address.ZipCode,
		request.Customer.Address.Country,
	)
	if err != nil {
		return commands.CheckoutCommand{}, err
	}

	customer, err := order.NewCustomerSnapshot(
		request.Customer.FirstName,
		request.Customer.LastName,
		request.Customer.Email,
		request.Customer.Phone,
		address,
	)
	if err != nil {
		return commands.CheckoutCommand{}, err
	}

	lines := make([]services.CartLine, 0, len(request.Items))
	for _, item := range request.Items {
		productID, idErr := kernel.UUIDFromBytes(item.ProductId[:])
		if idErr != nil {
			return commands.CheckoutCommand{}, idErr
		}

		line, lineErr := services.NewCartLine(productID, item.Quantity, deref(item.Color), deref(item.Size))
		if lineErr != nil {
			return commands.CheckoutCommand{}, lineErr
		}
		lines = append(lines, line)
	}

	method, err := order.ShippingMethodFromString(string(request.ShippingMethod))
	if err != nil {
		return commands.CheckoutCommand{}, err
	}

	return commands.NewCheckoutCommand(customer, lines, method, request.PaymentMethod, deref(idempotencyKey))
}

// orderToResponse maps the order aggregate into the wire representation.
func orderToResponse(aggregate *order.Order) servers.Order {
	customer := aggregate.Customer()
	address := customer.Address()

	items := make([]servers.LineItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, servers.LineItem{
			ProductId:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().String(),
			Quantity:    item.Quantity(),
			Color:       item.Color(),
			Size:        item.Size(),
			ImageRef:    item.ImageRef(),
			LineTotal:   item.LineTotal().String(),
		})
	}

	var courierID *openapi_types.UUID
	if courier := aggregate.Courier(); courier != nil {
		id := courier.Bytes()
		courierID = &id
	}

	totals := aggregate.Totals()
	return servers.Order{
		Id: aggregate.ID().Bytes(),
		Customer: servers.Customer{
			FirstName: customer.FirstName(),
			LastName:  customer.LastName(),
			Email:     customer.Email(),
			Phone:     customer.Phone(),
			Address: servers.Address{
				Street:  address.Street(),
				City:    address.City(),
				State:   address.State(),
				ZipCode: address.ZipCode(),
				Country: address.Country(),
			},
		},
		Items:          items,
		ShippingMethod: aggregate.ShippingMethod().String(),
		PaymentMethod:  aggregate.PaymentMethod(),
		Subtotal:       totals.Subtotal().String(),
		Shipping:       totals.Shipping().String(),
		Tax:            totals.Tax().String(),
		Total:          totals.Total().String(),
		Status:         aggregate.Status().String(),
		CourierId:      courierID,
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Version:        aggregate.Version(),
	}
}

// lineItemsToResponse maps projected line items into the wire representation.
func lineItemsToResponse(items []queries.LineItemResponse) []servers.LineItem {
	response := make([]servers.LineItem, 0, len(items))
	for _, item := range items {
		response = append(response, servers.LineItem{
			ProductId:   item.ProductID.Bytes(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice.String(),
			Quantity:    item.Quantity,
			Color:       item.Color,
			Size:        item.Size,
			ImageRef:    item.ImageRef,
			LineTotal:   item.LineTotal.String(),
		})
	}
	return response
}

// detailToResponse maps the read projection into the wire representation.
func detailToResponse(detail queries.GetOrderByIDQueryResponse) servers.Order {
	items := lineItemsToResponse(detail.Items)

	var courierID *openapi_types.UUID
	if detail.CourierID != nil {
		id := detail.CourierID.Bytes()
		courierID = &id
	}

	return servers.Order{
		Id: detail.ID.Bytes(),
		Customer: servers.Customer{
			FirstName: detail.Customer.FirstName,
			LastName:  detail.Customer.LastName,
			Email:     detail.Customer.Email,
			Phone:     detail.Customer.Phone,
			Address: servers.Address{
				Street:  detail.Customer.Street,
				City:    detail.Customer.City,
				State:   detail.Customer.State,
				ZipCode: detail.Customer.ZipCode,
				Country: detail.Customer.Country,
			},
		},
		Items:          items,
		ShippingMethod: detail.ShippingMethod.String(),
		PaymentMethod:  detail.PaymentMethod,
		Subtotal:       detail.Subtotal.String(),
		Shipping:       detail.Shipping.String(),
		Tax:            detail.Tax.String(),
		Total:          detail.Total.String(),
		Status:         detail.Status.String(),
		CourierId:      courierID,
		CreatedAt:      detail.CreatedAt,
		UpdatedAt:      detail.UpdatedAt,
		Version:        detail.Version,
	}
}

// summariesToResponse maps order summaries into the wire representation.
func summariesToResponse(summaries []queries.OrderSummaryResponse) []servers.OrderSummary {
	response := make([]servers.OrderSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = servers.OrderSummary{
			Id:            summary.ID.Bytes(),
			CustomerEmail: summary.CustomerEmail,
			Status:        summary.Status.String(),
			Total:         summary.Total.String(),
			Items:         lineItemsToResponse(summary.Items),
			CreatedAt:     summary.CreatedAt,
			Version:       summary.Version,
		}
	}
	return response
}

// errorResponse maps application errors onto HTTP status codes:
// validation failures are 400, missing objects (including cart lines that
// reference unknown products) are 404, business rule conflicts (stale
// versions, illegal transitions, oversell, reused idempotency keys) are 409.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrUnresolvedProduct):
		return jsonError(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, order.ErrAlreadyAssigned),
		errors.Is(err, order.ErrOrderNotAssignable),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, ports.ErrCheckoutKeyAlreadyUsed):
		return jsonError(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, services.ErrEmptyCart):
		return jsonError(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func jsonError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
