package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"github.com/marai-app/marai/internal/shared/constants"
	"github.com/marai-app/marai/internal/shared/logger"
)

// InitFarmPermissions seeds the default role policies. Owners manage
// everything in their tenant, managers run day-to-day operations,
// workers record events but cannot sell animals or change settings.
func InitFarmPermissions(enforcer *casbin.Enforcer, log logger.Interface) error {
	policies := [][]string{
		{constants.RoleOwner, "goat", "create"},
		{constants.RoleOwner, "goat", "read"},
		{constants.RoleOwner, "goat", "update"},
		{constants.RoleOwner, "goat", "delete"},
		{constants.RoleOwner, "breeding", "create"},
		{constants.RoleOwner, "breeding", "read"},
		{constants.RoleOwner, "breeding", "update"},
		{constants.RoleOwner, "health", "create"},
		{constants.RoleOwner, "health", "read"},
		{constants.RoleOwner, "health", "delete"},
		{constants.RoleOwner, "sale", "create"},
		{constants.RoleOwner, "sale", "read"},
		{constants.RoleOwner, "sale", "update"},
		{constants.RoleOwner, "feed", "create"},
		{constants.RoleOwner, "feed", "read"},
		{constants.RoleOwner, "feed", "update"},
		{constants.RoleOwner, "feed", "delete"},
		{constants.RoleOwner, "farm", "create"},
		{constants.RoleOwner, "farm", "read"},
		{constants.RoleOwner, "setting", "read"},
		{constants.RoleOwner, "setting", "update"},

		{constants.RoleManager, "goat", "create"},
		{constants.RoleManager, "goat", "read"},
		{constants.RoleManager, "goat", "update"},
		{constants.RoleManager, "breeding", "create"},
		{constants.RoleManager, "breeding", "read"},
		{constants.RoleManager, "breeding", "update"},
		{constants.RoleManager, "health", "create"},
		{constants.RoleManager, "health", "read"},
		{constants.RoleManager, "health", "delete"},
		{constants.RoleManager, "sale", "create"},
		{constants.RoleManager, "sale", "read"},
		{constants.RoleManager, "sale", "update"},
		{constants.RoleManager, "feed", "create"},
		{constants.RoleManager, "feed", "read"},
		{constants.RoleManager, "feed", "update"},
		{constants.RoleManager, "farm", "read"},
		{constants.RoleManager, "setting", "read"},

		{constants.RoleWorker, "goat", "read"},
		{constants.RoleWorker, "breeding", "read"},
		{constants.RoleWorker, "breeding", "update"},
		{constants.RoleWorker, "health", "create"},
		{constants.RoleWorker, "health", "read"},
		{constants.RoleWorker, "feed", "read"},
	}

	for _, policy := range policies {
		_, err := enforcer.AddPolicy(policy)
		if err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if err := enforcer.SavePolicy(); err != nil {
		log.Error("failed to save farm permissions", "error", err)
		return fmt.Errorf("failed to save farm permissions: %w", err)
	}

	log.Info("farm permissions initialized successfully")
	return nil
}
