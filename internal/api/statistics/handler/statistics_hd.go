package statisticsHandler

import (
	"BudgetGolang/internal/api/statistics"
	contextPkg "BudgetGolang/pkg/context"
	"BudgetGolang/pkg/handlerUtil"
	jwtPkg "BudgetGolang/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"strconv"
	"time"
)

func parseCount(ctx *fiber.Ctx, name string, invalid error) (int, error) {
	v := ctx.Query(name)
	if v == "" {
		return 0, nil
	}

	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 0 {
		return 0, invalid
	}

	return parsed, nil
}

func (h *StatisticsHandler) GetIncomeVsExpenses(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	months, err := parseCount(ctx, "months", statistics.ErrInvalidMonths)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_months")
	}

	chart, err := h.statisticsService.IncomeVsExpenses(c, userData.ID, months, ctx.Query("granularity"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_income_vs_expenses")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, chart)
	}
}

func (h *StatisticsHandler) GetExpenseCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	startDate, err := time.Parse(time.RFC3339, ctx.Query("start_date"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, statistics.ErrInvalidRange, ctx.Path(), "parse_start_date")
	}

	endDate, err := time.Parse(time.RFC3339, ctx.Query("end_date"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, statistics.ErrInvalidRange, ctx.Path(), "parse_end_date")
	}

	breakdown, err := h.statisticsService.ExpenseCategories(c, userData.ID, startDate, endDate)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_expense_categories")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, breakdown)
	}
}

func (h *StatisticsHandler) GetMonthlyTrends(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	months, err := parseCount(ctx, "months", statistics.ErrInvalidMonths)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_months")
	}

	trends, err := h.statisticsService.MonthlyTrends(c, userData.ID, months)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_monthly_trends")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, trends)
	}
}

func (h *StatisticsHandler) GetDailySpending(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	days, err := parseCount(ctx, "days", statistics.ErrInvalidDays)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_days")
	}

	spending, err := h.statisticsService.DailySpending(c, userData.ID, days)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_daily_spending")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, spending)
	}
}

func (h *StatisticsHandler) GetBudgetVsActual(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	comparison, err := h.statisticsService.BudgetVsActual(c, userData.ID, ctx.Query("breakdown"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_budget_vs_actual")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, comparison)
	}
}
