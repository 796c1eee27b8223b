package handlers

import (
	"context"
	"fmt"

	callUsecases "github.com/lorenzobigazzi0/cassa/internal/application/call/usecases"
	menuDto "github.com/lorenzobigazzi0/cassa/internal/application/menu/dto"
	orderUsecases "github.com/lorenzobigazzi0/cassa/internal/application/order/usecases"
	printUsecases "github.com/lorenzobigazzi0/cassa/internal/application/printing/usecases"
	userDto "github.com/lorenzobigazzi0/cassa/internal/application/user/dto"
	userUsecases "github.com/lorenzobigazzi0/cassa/internal/application/user/usecases"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/auth"
)

type mockLoginUC struct {
	got    userUsecases.LoginCommand
	result *userDto.LoginResponse
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, cmd userUsecases.LoginCommand) (*userDto.LoginResponse, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetMeUC struct {
	result *userDto.UserResponse
	err    error
}

func (m *mockGetMeUC) Execute(_ context.Context, _ uint) (*userDto.UserResponse, error) {
	return m.result, m.err
}

type mockListMenuUC struct {
	result []*menuDto.MenuItemResponse
	err    error
}

func (m *mockListMenuUC) Execute(_ context.Context) ([]*menuDto.MenuItemResponse, error) {
	return m.result, m.err
}

type mockCreateOrderUC struct {
	got    orderUsecases.CreateOrderCommand
	result *orderUsecases.CreateOrderResult
	err    error
}

func (m *mockCreateOrderUC) Execute(_ context.Context, cmd orderUsecases.CreateOrderCommand) (*orderUsecases.CreateOrderResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockMarkItemDoneUC struct {
	got    orderUsecases.MarkItemDoneCommand
	result *orderUsecases.MarkItemDoneResult
	err    error
}

func (m *mockMarkItemDoneUC) Execute(_ context.Context, cmd orderUsecases.MarkItemDoneCommand) (*orderUsecases.MarkItemDoneResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListOrdersUC struct {
	got    orderUsecases.ListOrdersQuery
	result []*events.OrderSnapshot
	err    error
}

func (m *mockListOrdersUC) Execute(_ context.Context, q orderUsecases.ListOrdersQuery) ([]*events.OrderSnapshot, error) {
	m.got = q
	return m.result, m.err
}

type mockGetOrderUC struct {
	result *events.OrderSnapshot
	err    error
}

func (m *mockGetOrderUC) Execute(_ context.Context, _ orderUsecases.GetOrderQuery) (*events.OrderSnapshot, error) {
	return m.result, m.err
}

type mockPrintOrderUC struct {
	got    printUsecases.PrintOrderCommand
	result *printUsecases.PrintOrderResult
	err    error
}

func (m *mockPrintOrderUC) Execute(_ context.Context, cmd printUsecases.PrintOrderCommand) (*printUsecases.PrintOrderResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockCreateCallUC struct {
	calls  int
	got    callUsecases.CreateCallCommand
	result *events.CallSnapshot
	err    error
}

func (m *mockCreateCallUC) Execute(_ context.Context, cmd callUsecases.CreateCallCommand) (*events.CallSnapshot, error) {
	m.calls++
	m.got = cmd
	return m.result, m.err
}

type mockAckCallUC struct {
	got    callUsecases.AckCallCommand
	result *events.CallSnapshot
	err    error
}

func (m *mockAckCallUC) Execute(_ context.Context, cmd callUsecases.AckCallCommand) (*events.CallSnapshot, error) {
	m.got = cmd
	return m.result, m.err
}

// tokenTable verifies tokens by exact lookup.
type tokenTable map[string]*auth.Claims

func (t tokenTable) Verify(token string) (*auth.Claims, error) {
	if claims, ok := t[token]; ok {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// roleMatrix allows the listed "role resource action" triples.
type roleMatrix map[string]bool

func (m roleMatrix) Enforce(role, resource, action string) (bool, error) {
	return m[role+" "+resource+" "+action], nil
}
