package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"driverapp/internal/core/domain/model/order"
)

func (s *Shell) render(ctx context.Context) {
	s.println("")
	s.println(s.color.Bold(s.screen.Header().Render()))

	switch s.screen {
	case ScreenLogin:
		s.println("login <email> <password>   or   signup")
		if err := s.printEnvironment(ctx); err != nil {
			s.printError(err)
		}
	case ScreenSignup:
		s.println("signup <name> <email> <password> <confirm> [role]")
	case ScreenOrderList:
		s.renderOrderList()
	case ScreenOrderDetail:
		s.renderOrderDetail()
	case ScreenAccount:
		s.renderAccount(ctx)
	}
}

func (s *Shell) renderOrderList() {
	selected := s.cfg.Orders.SelectedRegion()
	names := make([]string, 0, len(order.Regions()))
	for _, r := range order.Regions() {
		if r == selected {
			names = append(names, "["+r.String()+"]")
			continue
		}
		names = append(names, r.String())
	}
	s.println("Region: " + strings.Join(names, " "))

	orders := s.cfg.Orders.Orders()
	if len(orders) == 0 {
		s.println("No orders in this region")
		return
	}
	for i, o := range orders {
		s.printf("%2d. #%d %-24s %-18s %s -> %s\n",
			i+1, o.ID(), o.RestaurantName(), o.Status(), o.Pickup().Location(), o.Delivery().Location())
	}
}

func (s *Shell) renderOrderDetail() {
	o := s.detail.Order()
	s.printf("Order #%d  %s\n", o.ID(), o.RestaurantName())
	s.printf("Status:   %s\n", o.Status())
	if t := o.OrderTime(); !t.IsZero() {
		s.printf("Ordered:  %s\n", t.UTC().Format(time.DateTime))
	}
	if rating, ok := o.Rating(); ok {
		s.printf("Rating:   %.1f\n", rating)
	}
	s.printf("Pickup:   %s\n", describeStop(o.Pickup()))
	s.printf("Delivery: %s\n", describeStop(o.Delivery()))
	if label := s.detail.ActionLabel(); label != "" {
		s.printf("Next:     %s (advance)\n", s.color.Cyan(label))
	}
}

func (s *Shell) renderAccount(ctx context.Context) {
	if s.session == nil {
		return
	}
	s.printf("Name:  %s\n", s.session.Name())
	s.printf("Email: %s\n", s.session.Email())
	s.printf("Role:  %s\n", s.session.Role())
	if err := s.printEnvironment(ctx); err != nil {
		s.printError(err)
	}
}

func describeStop(stop order.Stop) string {
	out := stop.Location()
	if addr := stop.Address(); addr != "" {
		out = fmt.Sprintf("%s, %s", out, addr)
	}
	if c, ok := stop.Coordinates(); ok {
		out = fmt.Sprintf("%s (%s)", out, c)
	}
	return strings.TrimPrefix(out, ", ")
}
