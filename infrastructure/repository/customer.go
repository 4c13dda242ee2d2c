// Package repository contém a carga da coleção inicial a partir do banco,
// para implantações em que o seed de clientes vive no Postgres
package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/customer-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-admin-api/internal/domain"
)

const (
	customersTable = "customers c"
	ordersTable    = "orders o"
)

// CustomerRepository carrega clientes e pedidos aninhados do banco.
// Somente leitura: exclusões feitas pelas visões são locais ao processo.
type CustomerRepository interface {
	LoadCustomers() ([]domain.Customer, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) LoadCustomers() ([]domain.Customer, error) {
	customers, err := r.listCustomers()
	if err != nil {
		return nil, err
	}

	ordersByCustomer, err := r.listOrders()
	if err != nil {
		return nil, err
	}

	for i := range customers {
		customers[i].Orders = ordersByCustomer[customers[i].ID]
	}

	return customers, nil
}

func (r *customerRepository) listCustomers() ([]domain.Customer, error) {
	customersSQL, customersArgs, err := squirrel.
		Select(
			"c.id",
			"c.name",
			"c.email",
			"c.gender",
			"c.total_orders",
			"c.canceled",
			"c.returned",
			"c.total_spends",
			"c.commission_earned",
			"c.graph",
		).
		From(customersTable).
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de clientes: %w", err)
	}

	rows, err := r.conn.Query(customersSQL, customersArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)

	for rows.Next() {
		var customer domain.Customer
		var graph pq.Float64Array

		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.Gender,
			&customer.TotalOrders,
			&customer.Canceled,
			&customer.Returned,
			&customer.TotalSpends,
			&customer.CommissionEarned,
			&graph,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}

		customer.Graph = []float64(graph)
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar clientes: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) listOrders() (map[int][]domain.Order, error) {
	ordersSQL, ordersArgs, err := squirrel.
		Select(
			"o.customer_id",
			"o.id",
			"o.order_date",
			"o.items",
			"o.amount",
			"o.commission",
		).
		From(ordersTable).
		OrderBy("o.customer_id ASC", "o.order_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de pedidos: %w", err)
	}

	rows, err := r.conn.Query(ordersSQL, ordersArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de pedidos: %w", err)
	}
	defer rows.Close()

	ordersByCustomer := make(map[int][]domain.Order)

	for rows.Next() {
		var customerID int
		var order domain.Order

		err := rows.Scan(
			&customerID,
			&order.ID,
			&order.Date,
			&order.Items,
			&order.Amount,
			&order.Commission,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}

		ordersByCustomer[customerID] = append(ordersByCustomer[customerID], order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar pedidos: %w", err)
	}

	return ordersByCustomer, nil
}
