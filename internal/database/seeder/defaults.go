package seeder

func Defaults() []Seeder {
	return []Seeder{
		SchemaSeeder{},
		SkillMetadataSeeder{},
		TrendingSkillsSeeder{},
		RoleRequirementsSeeder{},
		RoleSalariesSeeder{},
		DemoTransitionsSeeder{},
	}
}
